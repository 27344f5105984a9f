/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/rotblauer/pintour/api"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/rgeo"
	"github.com/rotblauer/pintour/stream"
	"github.com/spf13/cobra"
)

var optTourGeoJSON bool
var optTourRgeo bool

// tourCmd represents the tour command
var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Build a tour from pins on stdin",
	Long: `Reads newline-delimited JSON pins from stdin and writes the tour as JSON to stdout.

Pins may be plain objects ({"id":..,"latitude":..,"longitude":..,"description":..})
or GeoJSON point features. Undecodable lines are skipped and counted.

Examples:

  cat pins.ndjson | pintour tour --tour.max_stops 8
  cat pins.ndjson | pintour tour --geojson > tour.geojson
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		ctx, stop := common.InterruptedContext(cmd.Context())
		defer stop()

		records, errs, stats := stream.ScanRecords(ctx, os.Stdin, 0)
		all := stream.Collect(ctx, records)
		if err := <-errs; err != nil {
			log.Fatalln(err)
		}
		st := stats()
		slog.Info("Read pins", "read", st.Read, "rejected", st.Rejected)

		var opts []api.Option
		if optTourRgeo {
			if err := rgeo.Init(rgeo.DefaultDatasets...); err != nil {
				log.Fatalln(err)
			}
			namer, err := rgeo.NewCachedGeocoder(rgeo.R(), params.CacheRgeoSize)
			if err != nil {
				log.Fatalln(err)
			}
			opts = append(opts, api.WithCountryNamer(namer))
		}

		svc := api.NewTourService(tourConfig(), nil, opts...)
		defer svc.Close()
		t, err := svc.GenerateFrom(ctx, all)
		if err != nil {
			log.Fatalln(err)
		}

		enc := json.NewEncoder(os.Stdout)
		if optTourGeoJSON {
			err = enc.Encode(t.FeatureCollection())
		} else {
			err = enc.Encode(t)
		}
		if err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tourCmd)

	flags := tourCmd.Flags()
	flags.BoolVar(&optTourGeoJSON, "geojson", false, "Write the tour as a GeoJSON FeatureCollection")
	flags.BoolVar(&optTourRgeo, "rgeo", false, "Tag stops with their country (loads reverse geocoding data)")
}
