package pipeline

import (
	"fmt"
	"os"

	"textclean/internal"
)

func ReadRows(path string) ([][]string, internal.InputFormat, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	format := DetectInputFormat(path, blob).Format
	rows, err := ParseRows(format, blob)
	if err != nil {
		return nil, format, err
	}
	return rows, format, nil
}

func ParseRows(format internal.InputFormat, content []byte) ([][]string, error) {
	switch format {
	case internal.FormatDelimited:
		return parseDelimited(content, ',')
	case internal.FormatTSV:
		return parseDelimited(content, '\t')
	case internal.FormatXLSX:
		return parseXLSX(content)
	case internal.FormatHTML:
		return parseHTMLTable(content)
	case internal.FormatPDF:
		return parsePDF(content)
	case internal.FormatEmail:
		return parseEmail(content)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func ReadRecords(path string) ([]internal.RawRecord, internal.InputFormat, error) {
	rows, format, err := ReadRows(path)
	if err != nil {
		return nil, format, err
	}
	return SelectRawText(rows), format, nil
}
