package models

// Category identifies one semantic kind of repeated project column.
type Category string

const (
	// CategoryName is the project name column.
	CategoryName Category = "name"
	// CategoryStatus is the project status column.
	CategoryStatus Category = "status"
	// CategoryVersion is the project version column.
	CategoryVersion Category = "version"
	// CategoryAuthor is the project author column.
	CategoryAuthor Category = "author"
	// CategoryContinue is the "add another project?" marker column.
	// It links groups in the source form but carries no output value.
	CategoryContinue Category = "continue"
)

// ColumnGroup maps each category present at one suffix position to the
// matched source column name. Categories with fewer matched columns
// than the position index are simply absent from the map.
type ColumnGroup map[Category]string

// LongRecord represents one (respondent, project) pair in the
// normalized output. ProjectName is always non-empty.
type LongRecord struct {
	ProjectName     string
	Status          string
	Version         string
	Author          string
	RespondentEmail string
	RespondentName  string
}

// Canonical output vocabulary. Kept in Portuguese for compatibility
// with the legacy regional export this tool replaces.
const (
	HeaderProjectName     = "Nome do Projeto"
	HeaderStatus          = "Status"
	HeaderVersion         = "Versão"
	HeaderAuthor          = "Autor"
	HeaderRespondentEmail = "Email Respondente"
	HeaderRespondentName  = "Nome Respondente"

	// RespondentEmailColumn and RespondentNameColumn are the fixed
	// respondent-identity columns expected in the wide input.
	RespondentEmailColumn = "Email"
	RespondentNameColumn  = "Nome"
)

// LongHeaders lists the long-table output columns in sheet order.
var LongHeaders = []string{
	HeaderProjectName,
	HeaderStatus,
	HeaderVersion,
	HeaderAuthor,
	HeaderRespondentEmail,
	HeaderRespondentName,
}

// Fields returns the record values aligned with LongHeaders.
func (r LongRecord) Fields() []string {
	return []string{
		r.ProjectName,
		r.Status,
		r.Version,
		r.Author,
		r.RespondentEmail,
		r.RespondentName,
	}
}
