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
	"os"
	"time"

	"github.com/rotblauer/pintour/api"
	"github.com/rotblauer/pintour/common"
	"github.com/rotblauer/pintour/locdb"
	"github.com/rotblauer/pintour/stream"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var optImportExport bool
var optImportMeterInterval time.Duration

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import pins from stdin into the location store",
	Long: `Reads newline-delimited JSON pins from stdin and stores them under --datadir.

Invalid pins (missing id, out-of-range or null-island coordinates) are dropped.
Pins repeated within one run are stored once. Re-importing a pin by the same id
replaces it, so the command is safe to run again on the same source.
Pins without a timestamp are stamped with the import time.

Graceful shutdown matters: interrupt once and wait for the store to close.

Examples:

  zcat pins.ndjson.gz | pintour import --datadir ~/.pintour
  cat pins.ndjson | pintour import --export
`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		ctx, stop := common.InterruptedContext(cmd.Context())
		defer stop()

		store, err := locdb.Open(viper.GetString("datadir"), false)
		if err != nil {
			log.Fatalln(err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				slog.Error("Failed to close store", "error", err)
			}
			slog.Info("Import done")
		}()

		records, errs, stats := stream.ScanRecords(ctx, os.Stdin, optImportMeterInterval)
		stored, err := api.Populate(ctx, store, records)
		if err != nil {
			slog.Error("Populate failed", "error", err)
		}
		if err := <-errs; err != nil {
			slog.Error("Read failed", "error", err)
		}
		st := stats()
		total, _ := store.Count()
		slog.Info("Imported pins", "read", st.Read, "rejected", st.Rejected, "stored", stored, "total", total)

		if optImportExport {
			n, err := store.Export()
			if err != nil {
				slog.Error("Export failed", "error", err)
				return
			}
			slog.Info("Exported pins", "count", n, "path", store.Flat.Path())
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	flags := importCmd.Flags()
	flags.BoolVar(&optImportExport, "export", false, "Append the whole store to the flat NDJSON export when done")
	flags.DurationVar(&optImportMeterInterval, "meter", 5*time.Second, "Progress log interval (0 disables)")
}
