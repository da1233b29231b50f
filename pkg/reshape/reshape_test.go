package reshape

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"projreorg/pkg/reshape/output"
	"projreorg/pkg/reshape/pipeline"
)

func writeBytes(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
}

// fullExport is a cp1252 wide export with two column groups: one
// respondent fills both slots, one fills only the first, one none.
var fullExport = []byte(
	"Email,Nome,Nome do Projeto,Status do Projeto.Meu projeto est\xe1:,Vers\xe3o do Projeto,Autor (Respons\xe1vel pelo Projeto),Deseja adicionar outro projeto ?,Nome do Projeto2,Status do Projeto.Meu projeto est\xe1:2\n" +
		"ana@example.com,Ana,Portal,Conclu\xeddo,1.2,Ana,Sim,Relat\xf3rios,Em andamento\n" +
		"bruno@example.com,Bruno,Intranet,Em andamento,2.0,Carla,N\xe3o,,\n" +
		"carla@example.com,Carla,,,,,,,\n")

func runFixture(t *testing.T, data []byte) (*Result, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	writeBytes(t, in, data)
	out := filepath.Join(dir, "out.xlsx")

	result, err := Run(in, Options{OutputPath: out, Encoding: "cp1252"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return result, out
}

func TestRun(t *testing.T) {
	result, out := runFixture(t, fullExport)

	// Three populated slots across all respondents.
	if result.Records != 3 {
		t.Errorf("Records = %d, want 3", result.Records)
	}
	if result.Groups != 2 {
		t.Errorf("Groups = %d, want 2", result.Groups)
	}
	if !result.Styled {
		t.Error("Expected styled workbook")
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(output.SheetProjects)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d", len(rows))
	}
	// Decoded accents survive end to end.
	if rows[1][0] != "Portal" || rows[1][1] != "Concluído" {
		t.Errorf("Row 1 = %v", rows[1])
	}
	if rows[3][0] != "Relatórios" {
		t.Errorf("Expected suffix-2 project last, got %q", rows[3][0])
	}

	// Respondent totals sum to the long-table row count.
	respRows, err := f.GetRows(output.SheetRespondents)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(respRows) != 3 {
		t.Fatalf("Expected 2 respondents with projects, got %d rows", len(respRows)-1)
	}
}

func TestRunSingleSlotScenario(t *testing.T) {
	data := []byte(
		"Nome do Projeto,Status do Projeto.Meu projeto est\xe1:,Nome do Projeto2,Status do Projeto.Meu projeto est\xe1:2,Email,Nome\n" +
			"Portal,Conclu\xeddo,,,ana@example.com,Ana\n")
	result, _ := runFixture(t, data)

	if result.Records != 1 {
		t.Errorf("Records = %d, want exactly 1", result.Records)
	}
}

func TestRunNoMatchingColumns(t *testing.T) {
	data := []byte("Carimbo de data/hora,Coment\xe1rios\n2024-01-01,ok\n")
	result, out := runFixture(t, data)

	if result.Records != 0 || result.Groups != 0 {
		t.Errorf("Expected empty result, got %+v", result)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	if got := len(f.GetSheetList()); got != 3 {
		t.Errorf("Expected 3 sheets, got %d", got)
	}
	rows, err := f.GetRows(output.SheetProjects)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header-only long table, got %d rows", len(rows))
	}
}

func TestRunMissingRespondentColumns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	writeBytes(t, in, []byte("Nome do Projeto\nPortal\n"))

	_, err := Run(in, Options{OutputPath: filepath.Join(dir, "out.xlsx")})
	if !errors.Is(err, pipeline.ErrMissingRespondentColumns) {
		t.Fatalf("Expected ErrMissingRespondentColumns, got %v", err)
	}

	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "normalize" {
		t.Errorf("Expected normalize stage error, got %v", err)
	}

	// Fatal runs must not leave a partial artifact behind.
	if _, err := excelize.OpenFile(filepath.Join(dir, "out.xlsx")); err == nil {
		t.Error("Partial artifact written on fatal error")
	}
}

func TestRunUnknownEncoding(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	writeBytes(t, in, []byte("A\n"))

	_, err := Run(in, Options{Encoding: "ebcdic", OutputPath: filepath.Join(dir, "out.xlsx")})
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("Expected ErrUnknownEncoding, got %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(filepath.Join(dir, "nope.csv"), Options{OutputPath: filepath.Join(dir, "out.xlsx")})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Expected ErrInputNotFound, got %v", err)
	}
}

func TestRunIdempotent(t *testing.T) {
	_, out1 := runFixture(t, fullExport)
	_, out2 := runFixture(t, fullExport)

	f1, err := excelize.OpenFile(out1)
	if err != nil {
		t.Fatalf("Failed to open first workbook: %v", err)
	}
	defer f1.Close()
	f2, err := excelize.OpenFile(out2)
	if err != nil {
		t.Fatalf("Failed to open second workbook: %v", err)
	}
	defer f2.Close()

	for _, sheet := range f1.GetSheetList() {
		rows1, err := f1.GetRows(sheet)
		if err != nil {
			t.Fatalf("GetRows failed: %v", err)
		}
		rows2, err := f2.GetRows(sheet)
		if err != nil {
			t.Fatalf("GetRows failed: %v", err)
		}
		if !reflect.DeepEqual(rows1, rows2) {
			t.Errorf("Sheet %q differs between identical runs", sheet)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if opts.outputPath() != DefaultOutputPath {
		t.Errorf("outputPath() = %q", opts.outputPath())
	}
	if opts.encoding() != DefaultEncoding {
		t.Errorf("encoding() = %q", opts.encoding())
	}
	if len(opts.patterns()) != len(pipeline.DefaultPatterns()) {
		t.Errorf("patterns() should fall back to defaults")
	}
}
