// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/txt2md/internal/history"
	"github.com/pdiddy/txt2md/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or export past conversions",
	Long: `History reads the local SQLite database that convert records each
processed document in. Use list for a table of recent runs or export for a
YAML or JSON dump.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	RunE:  runHistoryList,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export conversion history as YAML or JSON",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.PersistentFlags().String("db", history.DefaultDBPath, "history database path")
	historyCmd.PersistentFlags().Int("limit", history.DefaultLimit, "maximum number of records")
	_ = viper.BindPFlag("history_db", historyCmd.PersistentFlags().Lookup("db"))

	historyExportCmd.Flags().String("format", history.FormatYAML, "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*history.Store, error) {
	cfg := loadConfig(viper.GetViper())
	return history.NewStore(cfg.History)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	return formatHistory(os.Stdout, records)
}

func formatHistory(w io.Writer, records []types.ConversionRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No conversions recorded.")
		return err
	}

	fmt.Fprintf(w, "%-20s  %-9s  %-10s  %-40s  %s\n", "When", "Status", "Backend", "Source", "Output")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range records {
		source := r.Source
		if len(source) > 40 {
			source = "..." + source[len(source)-37:]
		}
		output := r.Output
		if r.Error != "" {
			output = r.Error
		}
		fmt.Fprintf(w, "%-20s  %-9s  %-10s  %-40s  %s\n",
			r.ConvertedAt.Local().Format(time.DateTime), r.Status, r.Backend, source, output)
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Export(context.Background(), os.Stdout, format, limit)
}
