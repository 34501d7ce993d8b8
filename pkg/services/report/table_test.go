package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

func TestBuildTable_OrdersByPeriodStart(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{
			Region: "Almaty",
			Period: "01.02.2024 - 29.02.2024",
			Rows:   []domain.ReportRow{{TaxpayerID: "B", Amount: "200"}},
		},
		{
			Region: "Almaty",
			Period: "annual recap",
			Rows:   []domain.ReportRow{{TaxpayerID: "C", Amount: "1"}},
		},
		{
			Region: "Almaty",
			Period: "01.01.2024 - 31.01.2024",
			Rows:   []domain.ReportRow{{TaxpayerID: "A", Amount: "100"}},
		},
	}}

	table := BuildTable(ds)

	require.Len(t, table, 6)
	assert.Equal(t, domain.TableRowPeriod, table[0].Kind)
	assert.Equal(t, "01.01.2024 - 31.01.2024", table[0].Period)
	assert.Equal(t, "A", table[1].Row.TaxpayerID)
	assert.Equal(t, "01.02.2024 - 29.02.2024", table[2].Period)
	assert.Equal(t, "B", table[3].Row.TaxpayerID)
	assert.Equal(t, "annual recap", table[4].Period)
	assert.Equal(t, "C", table[5].Row.TaxpayerID)
}

func TestBuildTable_DropsExactDuplicates(t *testing.T) {
	row := domain.ReportRow{TaxpayerID: "A", BankCode: "KZ01", Account: "KZ86", KBK: "101", Amount: "100"}

	ds := domain.Dataset{Files: []domain.ReportFile{{
		Region:     "Almaty",
		Period:     "01.01.2024 - 31.01.2024",
		ReportDate: "05.02.2024",
		Rows:       []domain.ReportRow{row, row, {TaxpayerID: "A", BankCode: "KZ01", Account: "KZ86", KBK: "101", Amount: "200"}},
	}}}

	table := BuildTable(ds)

	require.Len(t, table, 3)
	assert.Equal(t, domain.TableRowPeriod, table[0].Kind)
	assert.Equal(t, "100", table[1].Row.Amount)
	assert.Equal(t, "200", table[2].Row.Amount)
}

func TestBuildTable_SameRowInDifferentFilesKept(t *testing.T) {
	row := domain.ReportRow{TaxpayerID: "A", Amount: "100"}

	ds := domain.Dataset{Files: []domain.ReportFile{
		{Region: "Almaty", Period: "01.01.2024 - 31.01.2024", Rows: []domain.ReportRow{row}},
		{Region: "Almaty", Period: "01.02.2024 - 29.02.2024", Rows: []domain.ReportRow{row}},
	}}

	table := BuildTable(ds)

	dataRows := 0
	for _, r := range table {
		if r.Kind == domain.TableRowData {
			dataRows++
		}
	}
	assert.Equal(t, 2, dataRows)
}

func TestBuildTable_DoesNotMutateDataset(t *testing.T) {
	ds := domain.Dataset{Files: []domain.ReportFile{
		{Region: "Almaty", Period: "01.02.2024 - 29.02.2024"},
		{Region: "Almaty", Period: "01.01.2024 - 31.01.2024"},
	}}

	BuildTable(ds)

	assert.Equal(t, "01.02.2024 - 29.02.2024", ds.Files[0].Period)
	assert.Equal(t, "01.01.2024 - 31.01.2024", ds.Files[1].Period)
}
