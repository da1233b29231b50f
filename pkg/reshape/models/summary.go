package models

// BlankLabel is the bucket used in summaries for records whose author
// or status is empty. Empty values are counted, not dropped.
const BlankLabel = "(em branco)"

// CrossTab represents the author × status count grid, zero-filled.
// Axis order is deterministic: both Authors and Statuses are sorted.
type CrossTab struct {
	Authors  []string
	Statuses []string
	// Counts maps author → status → count. Absent entries read as 0.
	Counts map[string]map[string]int
}

// Count returns the cell value for an (author, status) pair, 0 when
// the combination was never observed.
func (c *CrossTab) Count(author, status string) int {
	if row, ok := c.Counts[author]; ok {
		return row[status]
	}
	return 0
}

// RespondentTotal represents the number of long records attributed to
// one respondent.
type RespondentTotal struct {
	RespondentName string
	Total          int
}

// TotalHeader is the count column label on the respondent sheet.
const TotalHeader = "Total de Projetos"
