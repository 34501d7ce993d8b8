package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

func almatyDataset() domain.Dataset {
	return domain.Dataset{Files: []domain.ReportFile{
		{
			Region: "Almaty",
			Period: "01.01.2024 - 31.01.2024",
			Rows: []domain.ReportRow{
				{TaxpayerID: "A", Amount: "100.00", KBK: "101"},
				{TaxpayerID: "B", Amount: "50.00", KBK: "102"},
			},
		},
		{
			Region: "Almaty",
			Period: "01.02.2024 - 29.02.2024",
			Rows: []domain.ReportRow{
				{TaxpayerID: "A", Amount: "200.00", KBK: "101"},
			},
		},
	}}
}

func TestComputeFilteredView_SingleFile(t *testing.T) {
	ds := almatyDataset()

	view := ComputeFilteredView(ds, domain.FilterSelection{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
	})

	require.NotNil(t, view)
	assert.Len(t, view.Files, 1)
	assert.Len(t, view.Rows, 2)
	assert.True(t, decimal.NewFromInt(150).Equal(view.Total), "total was %s", view.Total)
	assert.Equal(t, 2, view.UniqueTaxpayers)

	require.Len(t, view.Top10, 2)
	assert.Equal(t, "A", view.Top10[0].TaxpayerID)
	assert.True(t, decimal.NewFromInt(100).Equal(view.Top10[0].Amount))
	assert.Equal(t, "B", view.Top10[1].TaxpayerID)
	assert.True(t, decimal.NewFromInt(50).Equal(view.Top10[1].Amount))
	assert.InDelta(t, 100.0, view.Top10Share, 0.0001)
}

func TestComputeFilteredView_AllPeriods(t *testing.T) {
	ds := almatyDataset()

	view := ComputeFilteredView(ds, domain.FilterSelection{
		Region: "Almaty",
		Period: domain.PeriodAll,
	})

	require.NotNil(t, view)
	assert.Len(t, view.Files, 2)
	assert.True(t, decimal.NewFromInt(350).Equal(view.Total), "total was %s", view.Total)

	sum := decimal.Zero
	for _, b := range view.Months {
		sum = sum.Add(b.Amount)
	}
	assert.True(t, view.Total.Equal(sum), "buckets sum to %s, total %s", sum, view.Total)

	require.Len(t, view.Months, 2)
	assert.Equal(t, time.January, view.Months[0].Month)
	assert.Equal(t, "Jan", view.Months[0].Label)
	assert.True(t, decimal.NewFromInt(150).Equal(view.Months[0].Amount))
	assert.Equal(t, time.February, view.Months[1].Month)
	assert.True(t, decimal.NewFromInt(200).Equal(view.Months[1].Amount))
}

func TestComputeFilteredView_AllPeriodsTwoFiles(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{
			Region: "Astana",
			Period: "01.01.2024 - 31.01.2024",
			Rows:   []domain.ReportRow{{TaxpayerID: "A", Amount: "100.00"}},
		},
		{
			Region: "Astana",
			Period: "01.02.2024 - 29.02.2024",
			Rows:   []domain.ReportRow{{TaxpayerID: "B", Amount: "200.00"}},
		},
	}}

	view := ComputeFilteredView(ds, domain.FilterSelection{Region: "Astana", Period: domain.PeriodAll})

	require.NotNil(t, view)
	assert.True(t, decimal.NewFromInt(300).Equal(view.Total), "total was %s", view.Total)

	sum := decimal.Zero
	for _, b := range view.Months {
		sum = sum.Add(b.Amount)
	}
	assert.True(t, decimal.NewFromInt(300).Equal(sum), "buckets sum to %s", sum)
}

func TestComputeFilteredView_EmptyPeriod(t *testing.T) {
	assert.Nil(t, ComputeFilteredView(almatyDataset(), domain.FilterSelection{Region: "Almaty"}))
}

func TestComputeFilteredView_NoMatch(t *testing.T) {
	view := ComputeFilteredView(almatyDataset(), domain.FilterSelection{
		Region: "Astana",
		Period: "01.01.2024 - 31.01.2024",
	})
	assert.Nil(t, view)
}

func TestComputeFilteredView_KBKFilter(t *testing.T) {
	view := ComputeFilteredView(almatyDataset(), domain.FilterSelection{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
		KBK:    "101",
	})

	require.NotNil(t, view)
	assert.Len(t, view.Rows, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(view.Total))
	assert.Equal(t, 1, view.UniqueTaxpayers)
}

func TestComputeFilteredView_InvalidAmountsCountAsZero(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
		Rows: []domain.ReportRow{
			{TaxpayerID: "A", Amount: "1,000.00"},
			{TaxpayerID: "B", Amount: "n/a"},
		},
	}}}

	view := ComputeFilteredView(ds, domain.FilterSelection{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
	})

	require.NotNil(t, view)
	assert.True(t, decimal.NewFromInt(1000).Equal(view.Total), "total was %s", view.Total)
	assert.Equal(t, 2, view.UniqueTaxpayers)
}

func TestComputeFilteredView_EmptyTaxpayerIDExcludedFromRanking(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
		Rows: []domain.ReportRow{
			{TaxpayerID: "A", Amount: "100.00"},
			{TaxpayerID: "", Amount: "50.00"},
		},
	}}}

	view := ComputeFilteredView(ds, domain.FilterSelection{
		Region: "Almaty",
		Period: "01.01.2024 - 31.01.2024",
	})

	require.NotNil(t, view)
	assert.True(t, decimal.NewFromInt(150).Equal(view.Total), "total was %s", view.Total)
	assert.Equal(t, 1, view.UniqueTaxpayers)
	require.Len(t, view.Top10, 1)
	assert.InDelta(t, 100.0/1.5, view.Top10Share, 0.0001)
}

func TestMonthlyBuckets_UnparseablePeriodsSpreadEvenly(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{
			Region: "Almaty",
			Period: "01.01.2024 - 31.01.2024",
			Rows:   []domain.ReportRow{{TaxpayerID: "A", Amount: "100"}},
		},
		{
			Region: "Almaty",
			Period: "Q1 summary",
			Rows:   []domain.ReportRow{{TaxpayerID: "B", Amount: "33"}},
		},
	}}

	view := ComputeFilteredView(ds, domain.FilterSelection{Region: "Almaty", Period: domain.PeriodAll})
	require.NotNil(t, view)

	sum := decimal.Zero
	for _, b := range view.Months {
		sum = sum.Add(b.Amount)
	}
	assert.True(t, view.Total.Equal(sum), "buckets sum to %s, total %s", sum, view.Total)
}

func TestMonthlyBuckets_FallbackSplit(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{{
		Region: "Almaty",
		Period: domain.PeriodAll, // selected below, but its own period never parses
		Rows:   []domain.ReportRow{{TaxpayerID: "A", Amount: "100"}},
	}}}

	view := ComputeFilteredView(ds, domain.FilterSelection{Region: "Almaty", Period: domain.PeriodAll})
	require.NotNil(t, view)

	require.Len(t, view.Months, 2)
	assert.Equal(t, time.January, view.Months[0].Month)
	assert.Equal(t, time.February, view.Months[1].Month)
	assert.True(t, decimal.NewFromInt(60).Equal(view.Months[0].Amount), "january was %s", view.Months[0].Amount)
	assert.True(t, decimal.NewFromInt(40).Equal(view.Months[1].Amount), "february was %s", view.Months[1].Amount)
}

func TestPeriodStart(t *testing.T) {
	start, ok := PeriodStart("01.02.2024 - 29.02.2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)

	_, ok = PeriodStart("whenever")
	assert.False(t, ok)
}

func TestFindPriorYearFile(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{Region: "Almaty", Period: "01.01.2023 - 31.01.2023"},
		{Region: "Astana", Period: "01.01.2023 - 31.01.2023"},
		{Region: "Almaty", Period: "01.01.2024 - 31.01.2024"},
	}}

	prior := FindPriorYearFile(ds, "Almaty", "01.01.2024 - 31.01.2024")
	require.NotNil(t, prior)
	assert.Equal(t, "Almaty", prior.Region)
	assert.Equal(t, "01.01.2023 - 31.01.2023", prior.Period)

	assert.Nil(t, FindPriorYearFile(ds, "Almaty", "01.01.2023 - 31.01.2023"))
	assert.Nil(t, FindPriorYearFile(ds, "Almaty", "not a period"))
}
