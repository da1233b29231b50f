// Package output writes the reshaped tables to a styled XLSX workbook.
package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"projreorg/pkg/reshape/models"
)

// Sheet names, in workbook order.
const (
	SheetProjects    = "Projetos"
	SheetStatus      = "Resumo por Status"
	SheetRespondents = "Resumo por Respondente"
)

const (
	headerFillColor = "DDEBF7"
	// widthPadding and widthCap bound the fitted column widths.
	widthPadding = 2.0
	widthCap     = 60.0
)

// Write saves the long table and both summaries as three sheets of one
// workbook at path. The data sheets are saved before any styling is
// attempted: a styling fault is logged as a warning and leaves an
// unstyled but complete workbook behind. Styled reports whether the
// styling pass succeeded.
func Write(path string, records []models.LongRecord, crosstab *models.CrossTab, totals []models.RespondentTotal) (styled bool, err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("cannot create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeProjects(f, records); err != nil {
		return false, err
	}
	if err := writeCrossTab(f, crosstab); err != nil {
		return false, err
	}
	if err := writeRespondents(f, totals); err != nil {
		return false, err
	}

	// The default sheet is replaced by the three named ones.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return false, err
	}
	if idx, err := f.GetSheetIndex(SheetProjects); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return false, fmt.Errorf("cannot write workbook %s: %w", path, err)
	}

	if err := styleWorkbook(path); err != nil {
		slog.Warn("workbook written without styling", "path", path, "error", err)
		return false, nil
	}
	return true, nil
}

func writeProjects(f *excelize.File, records []models.LongRecord) error {
	if _, err := f.NewSheet(SheetProjects); err != nil {
		return err
	}
	if err := setRow(f, SheetProjects, 1, models.LongHeaders); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, SheetProjects, i+2, r.Fields()); err != nil {
			return err
		}
	}
	return nil
}

func writeCrossTab(f *excelize.File, crosstab *models.CrossTab) error {
	if _, err := f.NewSheet(SheetStatus); err != nil {
		return err
	}

	header := append([]string{models.HeaderAuthor}, crosstab.Statuses...)
	if err := setRow(f, SheetStatus, 1, header); err != nil {
		return err
	}

	for i, author := range crosstab.Authors {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetStatus, cell, author); err != nil {
			return err
		}
		for j, status := range crosstab.Statuses {
			cell, err := excelize.CoordinatesToCellName(j+2, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(SheetStatus, cell, crosstab.Count(author, status)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRespondents(f *excelize.File, totals []models.RespondentTotal) error {
	if _, err := f.NewSheet(SheetRespondents); err != nil {
		return err
	}
	header := []string{models.HeaderRespondentName, models.TotalHeader}
	if err := setRow(f, SheetRespondents, 1, header); err != nil {
		return err
	}
	for i, t := range totals {
		nameCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetRespondents, nameCell, t.RespondentName); err != nil {
			return err
		}
		totalCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetRespondents, totalCell, t.Total); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// styleWorkbook reopens the saved workbook and applies presentation
// formatting to every sheet: bold centered headers with a fill, and
// column widths fitted to the widest rendered value.
func styleWorkbook(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{headerFillColor},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}

		lastCol := 0
		for _, row := range rows {
			if len(row) > lastCol {
				lastCol = len(row)
			}
		}
		if lastCol == 0 {
			continue
		}

		first, err := excelize.CoordinatesToCellName(1, 1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(lastCol, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return err
		}

		if err := fitColumnWidths(f, sheet, rows, lastCol); err != nil {
			return err
		}
	}

	return f.Save()
}

// fitColumnWidths sets each column's width to the longest rendered
// value plus padding, capped.
func fitColumnWidths(f *excelize.File, sheet string, rows [][]string, lastCol int) error {
	for col := 0; col < lastCol; col++ {
		maxLen := 0
		for _, row := range rows {
			if col < len(row) && len([]rune(row[col])) > maxLen {
				maxLen = len([]rune(row[col]))
			}
		}
		width := float64(maxLen) + widthPadding
		if width > widthCap {
			width = widthCap
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
