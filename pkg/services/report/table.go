package report

import (
	"sort"
	"strings"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// BuildTable flattens a dataset into the report table: files ordered by
// period start (unparseable periods last), each opened by a period marker row
// and followed by its data rows. Rows that repeat an earlier row in full,
// including file metadata, are dropped.
func BuildTable(ds domain.Dataset) []domain.TableRow {
	files := make([]domain.ReportFile, len(ds.Files))
	copy(files, ds.Files)

	sort.SliceStable(files, func(i, j int) bool {
		si, iOK := PeriodStart(files[i].Period)
		sj, jOK := PeriodStart(files[j].Period)
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return si.Before(sj)
	})

	var table []domain.TableRow
	seen := make(map[string]struct{})

	for _, f := range files {
		table = append(table, domain.TableRow{Kind: domain.TableRowPeriod, Period: f.Period})

		for _, r := range f.Rows {
			key := strings.Join([]string{
				f.Period, f.Region, f.ReportDate,
				r.TaxpayerID, r.BankCode, r.Account, r.KBK, r.Amount,
			}, "\x1f")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			table = append(table, domain.TableRow{Kind: domain.TableRowData, Row: r})
		}
	}

	return table
}
