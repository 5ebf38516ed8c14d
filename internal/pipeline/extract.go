package pipeline

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jhillyerd/enmime"
	pdf "github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"textclean/internal"
	"textclean/internal/util"
)

const RawTextColumn = "raw_text"

var utf8BOM = []byte("\xef\xbb\xbf")

// SelectRawText takes the raw_text column when the first row names it.
// Otherwise every row, the first included, contributes its first cell.
// Empty or absent cells come through as util.MissingText.
func SelectRawText(rows [][]string) []internal.RawRecord {
	if len(rows) == 0 {
		return []internal.RawRecord{}
	}

	if col := findColumn(rows[0], RawTextColumn); col >= 0 {
		out := make([]internal.RawRecord, 0, len(rows)-1)
		for i, row := range rows[1:] {
			out = append(out, internal.RawRecord{LineNo: i + 1, Text: util.ToText(pickCell(row, col))})
		}
		return out
	}

	out := make([]internal.RawRecord, 0, len(rows))
	for i, row := range rows {
		out = append(out, internal.RawRecord{LineNo: i + 1, Text: util.ToText(pickCell(row, 0))})
	}
	return out
}

func parseDelimited(content []byte, comma rune) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func parseXLSX(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return [][]string{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func parseHTMLTable(content []byte) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	out := [][]string{}
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		rows.Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			if len(cells) > 0 {
				out = append(out, cells)
			}
		})
		return false
	})
	return out, nil
}

func parsePDF(content []byte) ([][]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}

	out := [][]string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		out = append(out, linesToRows(text)...)
	}
	return out, nil
}

func parseEmail(content []byte) ([][]string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	return linesToRows(env.Text), nil
}

func linesToRows(text string) [][]string {
	lines := util.SplitLines(text)
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, []string{line})
	}
	return out
}

func findColumn(header []string, name string) int {
	for i, h := range header {
		if util.CleanCell(h) == name {
			return i
		}
	}
	return -1
}

// pickCell returns nil for a cell that is absent or empty.
func pickCell(cells []string, idx int) any {
	if idx < 0 || idx >= len(cells) || cells[idx] == "" {
		return nil
	}
	return cells[idx]
}
