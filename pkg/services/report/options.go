package report

import (
	"sort"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// Options collects the distinct filter values present in a dataset. Regions
// and KBKs sort lexically; periods sort chronologically by start date with
// unparseable periods last, lexically among themselves.
func Options(ds domain.Dataset) domain.FilterOptions {
	regions := make(map[string]struct{})
	periods := make(map[string]struct{})
	kbks := make(map[string]struct{})

	for _, f := range ds.Files {
		if f.Region != "" {
			regions[f.Region] = struct{}{}
		}
		if f.Period != "" {
			periods[f.Period] = struct{}{}
		}
		for _, r := range f.Rows {
			if r.KBK != "" {
				kbks[r.KBK] = struct{}{}
			}
		}
	}

	opts := domain.FilterOptions{
		Regions: sortedKeys(regions),
		Periods: sortedKeys(periods),
		KBKs:    sortedKeys(kbks),
	}

	sort.SliceStable(opts.Periods, func(i, j int) bool {
		si, iOK := PeriodStart(opts.Periods[i])
		sj, jOK := PeriodStart(opts.Periods[j])
		if iOK != jOK {
			return iOK
		}
		if iOK && !si.Equal(sj) {
			return si.Before(sj)
		}
		return opts.Periods[i] < opts.Periods[j]
	})

	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
