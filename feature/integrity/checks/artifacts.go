package checks

import (
	"context"
	"sort"

	"country-info/feature/countryinfo"
)

// ArtifactReport describes the built country artifacts.
type ArtifactReport struct {
	Present   bool `json:"present"`
	Countries int  `json:"countries"`
	Aliases   int  `json:"aliases"`
	// Dangling lists aliases whose geo id has no record.
	Dangling []string `json:"dangling"`
	// Unindexed lists geo ids that no alias resolves to.
	Unindexed []int  `json:"unindexed"`
	Status    string `json:"status"` // "ok", "missing", "error"
}

// CheckArtifacts loads both artifacts and cross-checks the index against the records.
func CheckArtifacts(ctx context.Context, store countryinfo.ArtifactStore) (*ArtifactReport, error) {
	report := &ArtifactReport{
		Dangling:  []string{},
		Unindexed: []int{},
		Status:    "missing",
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return report, nil
	}

	records, err := store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}
	index, err := store.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}

	report.Present = true
	report.Countries = len(records)
	report.Aliases = len(index)
	report.Status = "ok"

	indexed := make(map[int]struct{}, len(records))
	for alias, id := range index {
		if _, ok := records[id]; !ok {
			report.Dangling = append(report.Dangling, alias)
			continue
		}
		indexed[id] = struct{}{}
	}
	for id := range records {
		if _, ok := indexed[id]; !ok {
			report.Unindexed = append(report.Unindexed, id)
		}
	}

	sort.Strings(report.Dangling)
	sort.Ints(report.Unindexed)
	if len(report.Dangling) > 0 || len(report.Unindexed) > 0 {
		report.Status = "error"
	}
	return report, nil
}
