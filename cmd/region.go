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
	"fmt"
	"log"
	"strconv"

	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/geo/region"
	"github.com/rotblauer/pintour/params"
	"github.com/spf13/cobra"
)

// regionCmd represents the region command
var regionCmd = &cobra.Command{
	Use:   "region LAT LNG",
	Short: "Print the region of a coordinate",
	Long: `Prints the region code, the region name, and the distance in kilometers
to the tour reference point.

Examples:

  pintour region 40.7128 -74.0060
  NAM-EAST	Eastern North America	2080.379
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil || lat < -90 || lat > 90 {
			log.Fatalln("invalid latitude:", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil || lng < -180 || lng > 180 {
			log.Fatalln("invalid longitude:", args[1])
		}
		km := common.DistanceKm(lat, lng, params.DefaultReferenceLat, params.DefaultReferenceLng)
		fmt.Printf("%s\t%s\t%.3f\n", region.Code(lat, lng), region.Name(lat, lng), km)
	},
}

func init() {
	rootCmd.AddCommand(regionCmd)
}
