package pipeline

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	CleanedTextColumn = "cleaned_text"
	KeyColumn         = "key"
)

// WriteCleaned writes the cleaned_text table, as a workbook for .xlsx paths
// and as CSV otherwise.
func WriteCleaned(outputPath string, labels []string) error {
	if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
		return WriteColumnXLSX(outputPath, CleanedTextColumn, labels)
	}
	return WriteColumnCSV(outputPath, CleanedTextColumn, labels)
}

// WriteColumnCSV writes a one-column CSV. Empty values are written as ""
// so that every value keeps its own row.
func WriteColumnCSV(outputPath, header string, values []string) error {
	if err := ensureParentDir(outputPath); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	if err := w.Write([]string{header}); err != nil {
		return err
	}
	for _, v := range values {
		if v == "" {
			w.Flush()
			if _, err := bw.WriteString("\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := w.Write([]string{v}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func WriteColumnXLSX(outputPath, header string, values []string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	set := func(row int, value string) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellStr(sheet, cell, value)
	}
	set(1, header)
	for i, v := range values {
		set(i+2, v)
	}

	if err := ensureParentDir(outputPath); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
