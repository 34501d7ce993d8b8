package commands

import (
	"context"
	"fmt"

	"github.com/fin-tools/report-atlas/pkg/services/config"
	"github.com/fin-tools/report-atlas/pkg/services/dashboard"
	"github.com/fin-tools/report-atlas/pkg/store/client"
)

// RegistryLoader defers reading the profile registry until a command actually
// runs, so commands like "help" work without a config file.
type RegistryLoader func() (config.Registry, error)

func newExplorer(ctx context.Context, loader RegistryLoader, profile string) (dashboard.Explorer, error) {
	registry, err := loader()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}

	endpoint, err := registry.GetEndpoint(ctx, profile)
	if err != nil {
		return nil, err
	}

	return dashboard.NewExplorer(client.NewReportClient(endpoint)), nil
}

func newClient(ctx context.Context, loader RegistryLoader, profile string) (*client.ReportClient, error) {
	registry, err := loader()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile registry: %w", err)
	}

	endpoint, err := registry.GetEndpoint(ctx, profile)
	if err != nil {
		return nil, err
	}

	return client.NewReportClient(endpoint), nil
}
