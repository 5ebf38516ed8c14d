package pipeline

import (
	"textclean/internal"
	"textclean/internal/util"
)

// labelTable holds the exact-match rules. Keys are normalized tokens.
var labelTable = map[string]string{
	"ADHOC QUERIES":           "AD-HOC QUERIES",
	"AD-HOC QUERIES":          "AD-HOC QUERIES",
	"AGRICULTURAL PRODUCTION": "AGRICULTURAL PRODUCTION",
	"AIRLINE COMPANIES":       "AIRLINE COMPANIES",
	"AIRLINES":                "AIRLINES",
	"ANALYTIC APPLICATIONS":   "ANALYTIC APPLICATIONS",
	"ANALYTIC MODEL":          "ANALYTIC MODEL",
}

// MapLabel returns the fixed label for a table key and the title-cased token
// for anything else.
func MapLabel(normalized string) string {
	if label, ok := labelTable[normalized]; ok {
		return label
	}
	return util.TitleCase(normalized)
}

func IsTableKey(normalized string) bool {
	_, ok := labelTable[normalized]
	return ok
}

// MapRecords normalizes and labels every record, keeping input order.
func MapRecords(records []internal.RawRecord) []internal.CleanedRow {
	normalized := NormalizeRecords(records)
	out := make([]internal.CleanedRow, 0, len(normalized))
	for _, rec := range normalized {
		out = append(out, internal.CleanedRow{
			LineNo:     rec.LineNo,
			Raw:        rec.Text,
			Normalized: rec.Normalized,
			Label:      MapLabel(rec.Normalized),
		})
	}
	return out
}

func Labels(rows []internal.CleanedRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Label
	}
	return out
}
