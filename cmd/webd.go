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
	"log"
	"log/slog"

	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/daemon/webd"
	"github.com/rotblauer/pintour/params"
	"github.com/rotblauer/pintour/rgeo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// webdCmd represents the serve command
var webdCmd = &cobra.Command{
	Use:   "webd",
	Short: "Start the webserver",
	Long: `Serves tours over HTTP and pushes new ones to websocket clients.

Routes:

  GET  /ping            pong
  GET  /status          uptime, store size, recent tours
  GET  /region          ?lat=&lng= region code and name
  GET  /tour            tour of the stored history
  GET  /tour.geojson    the same, as a FeatureCollection
  POST /tour            tour of the posted pins (not stored)
  POST /populate        store pins (token required if --token is set)
  GET  /socket          websocket: tours and pushed pins as they happen

Tour stops are exported to InfluxDB when INFLUXDB_URL and INFLUXDB_TOKEN are set.
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		slog.Info("webd.Run")

		if viper.GetBool("webd.rgeo") {
			if err := rgeo.Init(rgeo.DefaultDatasets...); err != nil {
				log.Fatalln(err)
			}
		}

		config := params.DefaultWebDaemonConfig()
		config.DataDir = viper.GetString("datadir")
		config.Network = viper.GetString("webd.network")
		config.Address = viper.GetString("webd.address")
		if token := viper.GetString("webd.token"); token != "" {
			config.Token = token
		}
		config.Tour = tourConfig()

		server, err := webd.NewWebDaemon(config)
		if err != nil {
			log.Fatalln(err)
		}

		ctx, stop := common.InterruptedContext(cmd.Context())
		defer stop()
		if err := server.Run(ctx); err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(webdCmd)

	defaults := params.DefaultWebDaemonConfig()

	pFlags := webdCmd.PersistentFlags()
	pFlags.String("webd.address", defaults.Address, "HTTP address to listen on")
	pFlags.String("webd.network", defaults.Network, "Network to listen on (tcp, tcp4, unix)")
	pFlags.String("webd.token", "", "Token required to POST /populate (default $PINTOUR_TOKEN)")
	pFlags.Bool("webd.rgeo", false, "Tag stops with their country (loads reverse geocoding data)")
	mustBindPFlags(pFlags)
}
