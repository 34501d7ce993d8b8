package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// ViewReporter renders an aggregated view to the user.
type ViewReporter interface {
	Handle(view *domain.FilteredView) error
}

type ViewCmd struct {
	profile  string
	region   string
	period   string
	kbk      string
	loader   RegistryLoader
	reporter ViewReporter
}

func NewViewCmd(loader RegistryLoader, reporter ViewReporter) *cobra.Command {
	vc := &ViewCmd{loader: loader, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the aggregated view for a region and period",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.profile, "profile", "", "Endpoint profile to use")
	cmd.Flags().StringVar(&vc.region, "region", "", "Region to filter by")
	cmd.Flags().StringVar(&vc.period, "period", "", `Period to filter by, or "all"`)
	cmd.Flags().StringVar(&vc.kbk, "kbk", "", "KBK to narrow rows by")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func (vc *ViewCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	explorer, err := newExplorer(ctx, vc.loader, vc.profile)
	if err != nil {
		return err
	}

	view, err := explorer.GetFilteredView(ctx, domain.FilterSelection{
		Region: vc.region,
		Period: vc.period,
		KBK:    vc.kbk,
	})
	if err != nil {
		return fmt.Errorf("failed to compute the view: %w", err)
	}
	if view == nil {
		return fmt.Errorf("no report matches region %q and period %q", vc.region, vc.period)
	}

	return vc.reporter.Handle(view)
}
