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
	"log/slog"
	"os"
	"strings"

	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pintour",
	Short: "Cluster viewer pins into a guided map tour",
	Long: `Pintour groups the locations viewers pin on a map into regional clusters
and arranges them into a tour: a short list of stops, each with a center,
a zoom level, and a description.

Pins are read as newline-delimited JSON, either from stdin or from the
location store kept under --datadir.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", params.DefaultConfigFilePath()))
	pFlags.String("log.level", "info", "Log level: debug, info, warn, error")
	pFlags.String("datadir", params.DefaultDatadirRoot, "Root directory for the location store")

	tourDefaults := params.DefaultTourConfig()
	pFlags.Float64("tour.radius_km", tourDefaults.RadiusKm, "Density radius and cluster link distance, in kilometers")
	pFlags.Int("tour.max_locations", tourDefaults.MaxLocations, "Maximum pins considered per tour")
	pFlags.Int("tour.bulk_load_limit", tourDefaults.BulkLoadLimit, "Maximum pins loaded from the store per tour")
	pFlags.Int("tour.max_stops", tourDefaults.MaxStops, "Maximum stops per tour (0 for no cap)")
	pFlags.Int("tour.max_zoom", int(tourDefaults.MaxZoom), "Maximum zoom level of any stop")
	pFlags.Int("tour.sample_size", tourDefaults.SampleSize, "Pins carried along with each stop")
	pFlags.Int("tour.description_max_len", tourDefaults.DescriptionMaxLen, "Maximum length of a single-pin description")
	pFlags.Duration("tour.cache_ttl", tourDefaults.CacheTTL, "How long a tour is reused for identical input")
	pFlags.Float64("tour.reference_lat", tourDefaults.ReferenceLat, "Latitude of the tour starting point")
	pFlags.Float64("tour.reference_lng", tourDefaults.ReferenceLng, "Longitude of the tour starting point")

	mustBindPFlags(pFlags)
}

// mustBindPFlags makes flags visible to viper under their own names,
// so that config file keys and PINTOUR_ env vars can set them too.
func mustBindPFlags(flags *pflag.FlagSet) {
	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(params.DatadirRoot)
		viper.SetConfigName(params.ConfigFileName)
		viper.SetConfigType(params.ConfigFileType)
	}

	viper.SetEnvPrefix(params.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Info("Using config file", "file", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
		slog.Error("Failed to read config file", "file", cfgFile, "error", err)
		os.Exit(1)
	}
}

// setDefaultSlog installs a text handler on stderr at the configured level.
func setDefaultSlog(cmd *cobra.Command, args []string) {
	level, err := common.ParseSlogLevel(viper.GetString("log.level"))
	if err != nil {
		slog.Warn("Invalid log level, using info", "error", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger.With("cmd", cmd.Name()))
}

// tourConfig assembles the tour configuration from flags, environment, and config file.
func tourConfig() *params.TourConfig {
	return &params.TourConfig{
		RadiusKm:          viper.GetFloat64("tour.radius_km"),
		ReferenceLat:      viper.GetFloat64("tour.reference_lat"),
		ReferenceLng:      viper.GetFloat64("tour.reference_lng"),
		MaxLocations:      viper.GetInt("tour.max_locations"),
		BulkLoadLimit:     viper.GetInt("tour.bulk_load_limit"),
		MaxStops:          viper.GetInt("tour.max_stops"),
		MaxZoom:           common.SlippyZoomLevelT(viper.GetInt("tour.max_zoom")),
		SampleSize:        viper.GetInt("tour.sample_size"),
		DescriptionMaxLen: viper.GetInt("tour.description_max_len"),
		CacheTTL:          viper.GetDuration("tour.cache_ttl"),
	}
}
