package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"projreorg/pkg/reshape/models"
)

// ErrMissingRespondentColumns indicates the wide input lacks the fixed
// respondent-identity columns every long record requires.
var ErrMissingRespondentColumns = errors.New("missing respondent columns")

// Normalize explodes the wide table into long records, one per
// populated (respondent, project slot) pair. Groups are consumed in
// order; within a group the original row order is preserved.
//
// The fixed respondent columns must be present: every long record
// carries the respondent's email and display name.
func Normalize(wide *models.Table, groups []models.ColumnGroup) ([]models.LongRecord, error) {
	emailIdx := wide.ColumnIndex(models.RespondentEmailColumn)
	nameIdx := wide.ColumnIndex(models.RespondentNameColumn)

	var missing []string
	if emailIdx < 0 {
		missing = append(missing, models.RespondentEmailColumn)
	}
	if nameIdx < 0 {
		missing = append(missing, models.RespondentNameColumn)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRespondentColumns,
			strings.Join(missing, ", "))
	}

	var records []models.LongRecord
	for _, group := range groups {
		projIdx := wide.ColumnIndex(group[models.CategoryName])
		if projIdx < 0 {
			continue
		}
		statusIdx := groupColumnIndex(wide, group, models.CategoryStatus)
		versionIdx := groupColumnIndex(wide, group, models.CategoryVersion)
		authorIdx := groupColumnIndex(wide, group, models.CategoryAuthor)

		for row := range wide.Rows {
			project := wide.Value(row, projIdx)
			if strings.TrimSpace(project) == "" {
				continue
			}
			records = append(records, models.LongRecord{
				ProjectName:     project,
				Status:          wide.Value(row, statusIdx),
				Version:         wide.Value(row, versionIdx),
				Author:          wide.Value(row, authorIdx),
				RespondentEmail: wide.Value(row, emailIdx),
				RespondentName:  wide.Value(row, nameIdx),
			})
		}
	}
	return records, nil
}

// groupColumnIndex resolves a category's column index for one group,
// -1 when the category is absent from the group. Absent categories
// yield empty output values for every row of the group.
func groupColumnIndex(wide *models.Table, group models.ColumnGroup, cat models.Category) int {
	col, ok := group[cat]
	if !ok {
		return -1
	}
	return wide.ColumnIndex(col)
}
