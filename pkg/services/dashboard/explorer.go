// Package dashboard glues the report store to the aggregation engine: it
// fetches the committed dataset and serves filter options, filtered views and
// the report table as domain values.
package dashboard

import (
	"context"
	"fmt"

	"github.com/fin-tools/report-atlas/pkg/adapters"
	"github.com/fin-tools/report-atlas/pkg/models/api"
	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/services/report"
)

// ReportStore provides the committed report dataset.
type ReportStore interface {
	FetchReportData(ctx context.Context) (api.ReportData, error)
}

type Explorer interface {
	// GetFilterOptions lists the distinct regions, periods and KBKs present
	// in the dataset.
	GetFilterOptions(ctx context.Context) (domain.FilterOptions, error)
	// GetFilteredView aggregates the dataset for one selection. The view is
	// nil when the selection matches nothing.
	GetFilteredView(ctx context.Context, sel domain.FilterSelection) (*domain.FilteredView, error)
	// GetReportTable flattens the dataset into ordered, deduplicated table
	// rows grouped by period.
	GetReportTable(ctx context.Context) ([]domain.TableRow, error)
}

type explorer struct {
	store ReportStore
}

func NewExplorer(store ReportStore) Explorer {
	return &explorer{store: store}
}

func (e *explorer) GetFilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	ds, err := e.dataset(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}

	return report.Options(ds), nil
}

func (e *explorer) GetFilteredView(ctx context.Context, sel domain.FilterSelection) (*domain.FilteredView, error) {
	ds, err := e.dataset(ctx)
	if err != nil {
		return nil, err
	}

	return report.ComputeFilteredView(ds, sel), nil
}

func (e *explorer) GetReportTable(ctx context.Context) ([]domain.TableRow, error) {
	ds, err := e.dataset(ctx)
	if err != nil {
		return nil, err
	}

	return report.BuildTable(ds), nil
}

func (e *explorer) dataset(ctx context.Context) (domain.Dataset, error) {
	data, err := e.store.FetchReportData(ctx)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to fetch report data: %w", err)
	}

	return adapters.MapReportDataApiToDomain(data), nil
}
