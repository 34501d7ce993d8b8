package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type FiltersCmd struct {
	profile string
	loader  RegistryLoader
}

func NewFiltersCmd(loader RegistryLoader) *cobra.Command {
	fc := &FiltersCmd{loader: loader}
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List available regions, periods and KBKs",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.profile, "profile", "", "Endpoint profile to use")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (fc *FiltersCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	explorer, err := newExplorer(ctx, fc.loader, fc.profile)
	if err != nil {
		return err
	}

	opts, err := explorer.GetFilterOptions(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch filter options: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Regions:\n%s\n\n", strings.Join(opts.Regions, "\n"))
	fmt.Fprintf(out, "Periods:\n%s\n\n", strings.Join(opts.Periods, "\n"))
	fmt.Fprintf(out, "KBKs:\n%s\n", strings.Join(opts.KBKs, "\n"))

	return nil
}
