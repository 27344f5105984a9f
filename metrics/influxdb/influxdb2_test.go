package influxdb

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/testing/testdata"
)

func TestStopPoints(t *testing.T) {
	tr := tour.Build(testdata.Records("p", testdata.NewYork, testdata.Boston, testdata.Tokyo), nil)
	tr.Stops[1].Country = "Japan"
	at := time.Date(2024, 12, 20, 1, 0, 0, 0, time.UTC)
	points := StopPoints("tour_stop", tr, at)
	if len(points) != 2 {
		t.Fatalf("points: %d", len(points))
	}
	first := write.PointToLineProtocol(points[0], time.Second)
	if !strings.HasPrefix(first, "tour_stop,cluster=0.p0,region=NAM-EAST ") {
		t.Errorf("line: %s", first)
	}
	if !strings.Contains(first, "count=2i") || !strings.HasSuffix(strings.TrimSpace(first), "1734656400") {
		t.Errorf("line: %s", first)
	}
	second := write.PointToLineProtocol(points[1], time.Second)
	if !strings.Contains(second, "country=Japan") {
		t.Errorf("line: %s", second)
	}
}

func TestExportTourStops_NotConfigured(t *testing.T) {
	err := ExportTourStops(&params.InfluxConfig{}, &tour.Tour{}, time.Now())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("want ErrNotConfigured, got %v", err)
	}
	if err := ExportTourStops(nil, &tour.Tour{}, time.Now()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("nil config: %v", err)
	}
}
