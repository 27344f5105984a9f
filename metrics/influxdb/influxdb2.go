package influxdb

import (
	"errors"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/params"
)

var ErrNotConfigured = errors.New("influxdb not configured")

// StopPoints renders tour stops as line protocol points, all stamped at.
func StopPoints(measurement string, t *tour.Tour, at time.Time) []*write.Point {
	points := make([]*write.Point, 0, len(t.Stops))
	for _, s := range t.Stops {
		p := influxdb2.NewPointWithMeasurement(measurement).
			SetTime(at).
			AddTag("region", s.RegionCode).
			AddTag("cluster", string(s.ClusterID)).
			AddField("index", s.Index).
			AddField("latitude", s.Latitude).
			AddField("longitude", s.Longitude).
			AddField("zoom", int(s.Zoom)).
			AddField("count", s.Count).
			AddField("average_distance_km", s.AverageDistanceKm)
		if s.Country != "" {
			p.AddTag("country", s.Country)
		}
		p.SortTags().SortFields()
		points = append(points, p)
	}
	return points
}

// ExportTourStops posts a tour's stops to an InfluxDB Write API.
// The Write API buffers and flushes. The last error encountered is returned.
func ExportTourStops(config *params.InfluxConfig, t *tour.Tour, at time.Time) error {
	if !config.Enabled() {
		return ErrNotConfigured
	}
	opts := influxdb2.DefaultOptions()
	opts.SetPrecision(time.Second)
	client := influxdb2.NewClientWithOptions(config.URL, config.Token, opts)
	writeAPI := client.WriteAPI(config.Org, config.Bucket)

	// Errors returns a channel for reading errors which occurs during async writes.
	// Must be called before performing any writes for errors to be collected.
	// The chan is unbuffered and must be drained or the writer will block.
	// https://github.com/influxdata/influxdb-client-go?tab=readme-ov-file#reading-async-errors
	errorsCh := writeAPI.Errors()
	var err error
	wait := sync.WaitGroup{}
	wait.Add(1)
	go func() {
		defer wait.Done()
		for e := range errorsCh {
			if e != nil {
				err = e
			}
		}
	}()

	for _, p := range StopPoints(config.Measurement, t, at) {
		writeAPI.WritePoint(p)
	}
	writeAPI.Flush()
	client.Close()
	wait.Wait()
	return err
}
