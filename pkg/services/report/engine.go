// Package report implements the aggregation core of the dashboard: filtering
// a report dataset down to a selection, computing summary statistics and
// monthly breakdowns, and flattening the dataset into a sortable table.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/services/money"
)

var periodRangeRE = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})\s*-\s*(\d{2}\.\d{2}\.\d{4})`)

const periodDateLayout = "02.01.2006"

// PeriodStart extracts the start date of a "DD.MM.YYYY - DD.MM.YYYY" period
// string. The second return is false when the string does not match that
// shape.
func PeriodStart(period string) (time.Time, bool) {
	m := periodRangeRE.FindStringSubmatch(period)
	if m == nil {
		return time.Time{}, false
	}

	t, err := time.Parse(periodDateLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// ComputeFilteredView aggregates the dataset for one filter selection. It is a
// pure function: the dataset is never mutated and the result is recomputed on
// every call.
//
// An empty period, or a selection matching no files, yields nil. Period
// domain.PeriodAll concatenates every file of the selected region (every file
// at all when the region is empty); otherwise exactly one file with matching
// region and period is used. A non-empty KBK narrows rows after file
// selection.
func ComputeFilteredView(ds domain.Dataset, sel domain.FilterSelection) *domain.FilteredView {
	if sel.Period == "" {
		return nil
	}

	var files []domain.ReportFile

	if sel.Period == domain.PeriodAll {
		for _, f := range ds.Files {
			if sel.Region == "" || f.Region == sel.Region {
				files = append(files, f)
			}
		}
	} else {
		for _, f := range ds.Files {
			if f.Region == sel.Region && f.Period == sel.Period {
				files = append(files, f)
				break
			}
		}
	}

	if len(files) == 0 {
		return nil
	}

	var rows []domain.ReportRow
	for _, f := range files {
		for _, r := range f.Rows {
			if sel.KBK != "" && r.KBK != sel.KBK {
				continue
			}
			rows = append(rows, r)
		}
	}

	total := decimal.Zero
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, r := range rows {
		amount := money.Parse(r.Amount)
		total = total.Add(amount)

		// Rows without a taxpayer id still count towards the total but are
		// left out of the per-taxpayer ranking.
		if r.TaxpayerID == "" {
			continue
		}

		if _, seen := totals[r.TaxpayerID]; !seen {
			order = append(order, r.TaxpayerID)
		}
		totals[r.TaxpayerID] = totals[r.TaxpayerID].Add(amount)
	}

	ranked := make([]domain.TaxpayerTotal, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, domain.TaxpayerTotal{TaxpayerID: id, Amount: totals[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	top10 := ranked
	if len(top10) > 10 {
		top10 = top10[:10]
	}

	var share float64
	if !total.IsZero() {
		topSum := decimal.Zero
		for _, t := range top10 {
			topSum = topSum.Add(t.Amount)
		}
		share, _ = topSum.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &domain.FilteredView{
		Selection:       sel,
		Files:           files,
		Rows:            rows,
		Total:           total,
		UniqueTaxpayers: len(totals),
		Top10:           top10,
		Top10Share:      share,
		Months:          monthlyBuckets(files, sel.KBK, total),
	}
}

// monthlyBuckets splits the view total across calendar months. Files with a
// parseable period start contribute their (KBK-filtered) sum to that start
// month. Files without one are spread evenly across the months already
// present; when no file parses at all, a fixed 60/40 January/February split
// stands in. The split is an approximation, but the bucket amounts always add
// up to the view total exactly.
func monthlyBuckets(files []domain.ReportFile, kbk string, total decimal.Decimal) []domain.MonthBucket {
	byMonth := make(map[time.Month]decimal.Decimal)
	leftovers := decimal.Zero

	for _, f := range files {
		sum := decimal.Zero
		for _, r := range f.Rows {
			if kbk != "" && r.KBK != kbk {
				continue
			}
			sum = sum.Add(money.Parse(r.Amount))
		}

		if start, ok := PeriodStart(f.Period); ok {
			byMonth[start.Month()] = byMonth[start.Month()].Add(sum)
		} else {
			leftovers = leftovers.Add(sum)
		}
	}

	if len(byMonth) == 0 {
		sixty := total.Mul(decimal.RequireFromString("0.6"))
		return []domain.MonthBucket{
			{Month: time.January, Label: monthLabel(time.January), Amount: sixty},
			{Month: time.February, Label: monthLabel(time.February), Amount: total.Sub(sixty)},
		}
	}

	months := make([]time.Month, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	if !leftovers.IsZero() {
		n := decimal.NewFromInt(int64(len(months)))
		each := leftovers.Div(n).Round(2)
		for i, m := range months {
			if i == len(months)-1 {
				byMonth[m] = byMonth[m].Add(leftovers.Sub(each.Mul(decimal.NewFromInt(int64(len(months) - 1)))))
			} else {
				byMonth[m] = byMonth[m].Add(each)
			}
		}
	}

	buckets := make([]domain.MonthBucket, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, domain.MonthBucket{Month: m, Label: monthLabel(m), Amount: byMonth[m]})
	}

	return buckets
}

// monthLabel is the short English month name ("Jan" .. "Dec").
func monthLabel(m time.Month) string {
	return m.String()[:3]
}

// FindPriorYearFile looks for a file of the same region whose period mentions
// the prior-year counterpart of the given period's start date. The match is a
// plain substring search over period strings, which is an approximation: it
// assumes periods embed dates in the same DD.MM.YYYY spelling year over year.
func FindPriorYearFile(ds domain.Dataset, region, period string) *domain.ReportFile {
	m := periodRangeRE.FindStringSubmatch(period)
	if m == nil {
		return nil
	}

	start, err := time.Parse(periodDateLayout, m[1])
	if err != nil {
		return nil
	}

	prior := m[1][:6] + fmt.Sprintf("%04d", start.Year()-1)

	for i, f := range ds.Files {
		if region != "" && f.Region != region {
			continue
		}
		if strings.Contains(f.Period, prior) {
			return &ds.Files[i]
		}
	}

	return nil
}
