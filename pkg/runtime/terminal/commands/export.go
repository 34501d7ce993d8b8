package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/runtime/terminal/export"
)

type ExportCmd struct {
	profile string
	region  string
	period  string
	kbk     string
	output  string
	loader  RegistryLoader
}

func NewExportCmd(loader RegistryLoader) *cobra.Command {
	ec := &ExportCmd{loader: loader}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an aggregated view to an xlsx workbook",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.profile, "profile", "", "Endpoint profile to use")
	cmd.Flags().StringVar(&ec.region, "region", "", "Region to filter by")
	cmd.Flags().StringVar(&ec.period, "period", "", `Period to filter by, or "all"`)
	cmd.Flags().StringVar(&ec.kbk, "kbk", "", "KBK to narrow rows by")
	cmd.Flags().StringVarP(&ec.output, "output", "o", "report.xlsx", "Path of the workbook to write")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	explorer, err := newExplorer(ctx, ec.loader, ec.profile)
	if err != nil {
		return err
	}

	view, err := explorer.GetFilteredView(ctx, domain.FilterSelection{
		Region: ec.region,
		Period: ec.period,
		KBK:    ec.kbk,
	})
	if err != nil {
		return fmt.Errorf("failed to compute the view: %w", err)
	}
	if view == nil {
		return fmt.Errorf("no report matches region %q and period %q", ec.region, ec.period)
	}

	if err := export.NewReporter(ec.output).Handle(view); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", ec.output)
	return nil
}
