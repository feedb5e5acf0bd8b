package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/cloctop/internal/formatter"
	"github.com/yildizm/cloctop/internal/view"
)

var reportFormat string

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Print a scan result without the interactive table",
		Long: `Run cloc once and print the grouped, sorted result to stdout.

Useful for scripting and CI pipelines. The grouping flag selects the same
views the interactive table offers.

Examples:
  cloctop report .
  cloctop report --group language --format json ./src`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}

	cmd.Flags().StringVar(&reportFormat, "format", "", "output format (text, json, csv)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	key, err := parseGroupKey(pickGroup(cmd, cfg))
	if err != nil {
		return err
	}

	format := cfg.Output.DefaultFormat
	if cmd.Flags().Changed("format") {
		format = reportFormat
	}
	fm, err := formatter.New(format)
	if err != nil {
		return err
	}

	output, err := newRunner(cfg, path).Run(context.Background())
	if err != nil {
		return err
	}

	store, err := ingest(output.Records)
	if err != nil {
		return err
	}

	sorter := view.NewSorter()
	projected := view.NewGrouper().Project(store.All(), key)
	sorted := sorter.Sort(projected, sorter.SpecFor(key))

	data, err := fm.Format(&formatter.Report{
		Path:     path,
		Header:   output.Header,
		View:     sorted,
		Totals:   store.Totals(),
		Warnings: store.Warnings(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
