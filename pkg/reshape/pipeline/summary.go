package pipeline

import (
	"sort"

	"projreorg/pkg/reshape/models"
)

// CrossTabulate builds the author × status count grid over the long
// records. Empty author or status values are counted under the blank
// bucket rather than dropped. Both axes are sorted so repeated runs
// over the same input produce identical sheets.
func CrossTabulate(records []models.LongRecord) *models.CrossTab {
	counts := make(map[string]map[string]int)
	statusSet := make(map[string]bool)

	for _, r := range records {
		author := orBlank(r.Author)
		status := orBlank(r.Status)
		if counts[author] == nil {
			counts[author] = make(map[string]int)
		}
		counts[author][status]++
		statusSet[status] = true
	}

	authors := make([]string, 0, len(counts))
	for a := range counts {
		authors = append(authors, a)
	}
	sort.Strings(authors)

	statuses := make([]string, 0, len(statusSet))
	for s := range statusSet {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	return &models.CrossTab{
		Authors:  authors,
		Statuses: statuses,
		Counts:   counts,
	}
}

// CountByRespondent tallies long records per respondent display name,
// sorted by name.
func CountByRespondent(records []models.LongRecord) []models.RespondentTotal {
	counts := make(map[string]int)
	for _, r := range records {
		counts[orBlank(r.RespondentName)]++
	}

	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	totals := make([]models.RespondentTotal, 0, len(names))
	for _, n := range names {
		totals = append(totals, models.RespondentTotal{
			RespondentName: n,
			Total:          counts[n],
		})
	}
	return totals
}

func orBlank(s string) string {
	if s == "" {
		return models.BlankLabel
	}
	return s
}
