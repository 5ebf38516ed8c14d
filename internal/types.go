package internal

type InputFormat string

const (
	FormatDelimited InputFormat = "delimited"
	FormatTSV       InputFormat = "tsv"
	FormatXLSX      InputFormat = "xlsx"
	FormatHTML      InputFormat = "html_table"
	FormatPDF       InputFormat = "pdf"
	FormatEmail     InputFormat = "email_text"
)

type RawRecord struct {
	LineNo int
	Text   string
}

type CleanedRow struct {
	LineNo     int
	Raw        string
	Normalized string
	Label      string
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type RunRow struct {
	ID          int
	TraceID     string
	InputPath   string
	OutputPath  string
	KeyPath     string
	Format      string
	Records     int
	LabelCounts []LabelCount
	Timings     map[string]float64
	CreatedAt   string
}
