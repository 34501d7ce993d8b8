package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

func TestOptions(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{
			Region: "Astana",
			Period: "01.02.2024 - 29.02.2024",
			Rows:   []domain.ReportRow{{KBK: "102"}, {KBK: ""}},
		},
		{
			Region: "Almaty",
			Period: "01.01.2024 - 31.01.2024",
			Rows:   []domain.ReportRow{{KBK: "101"}, {KBK: "102"}},
		},
		{
			Region: "Almaty",
			Period: "quarterly recap",
		},
		{
			Region: "",
			Period: "01.01.2024 - 31.01.2024",
		},
	}}

	opts := Options(ds)

	assert.Equal(t, []string{"Almaty", "Astana"}, opts.Regions)
	assert.Equal(t, []string{
		"01.01.2024 - 31.01.2024",
		"01.02.2024 - 29.02.2024",
		"quarterly recap",
	}, opts.Periods)
	assert.Equal(t, []string{"101", "102"}, opts.KBKs)
}

func TestOptions_EmptyDataset(t *testing.T) {
	opts := Options(domain.Dataset{})

	assert.Empty(t, opts.Regions)
	assert.Empty(t, opts.Periods)
	assert.Empty(t, opts.KBKs)
}
