package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"textclean/internal"
)

// KeyTablePath is where the key table is written, relative to the working
// directory, whatever output path the caller asked for.
const KeyTablePath = "files/test.csv"

var ErrInputNotFound = errors.New("input file not found")

type CleanResult struct {
	Format  internal.InputFormat
	Rows    []internal.CleanedRow
	KeyPath string
	Keys    int
}

// Clean reads raw records from inputPath, writes their labels to outputPath
// and writes the key table to KeyTablePath. Nothing is written when the
// input does not exist.
func Clean(inputPath, outputPath string) (CleanResult, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CleanResult{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return CleanResult{}, err
	}

	records, format, err := ReadRecords(inputPath)
	if err != nil {
		return CleanResult{}, fmt.Errorf("read %s: %w", inputPath, err)
	}

	rows := MapRecords(records)
	if err := WriteCleaned(outputPath, Labels(rows)); err != nil {
		return CleanResult{}, fmt.Errorf("write %s: %w", outputPath, err)
	}

	keys := MakeTestKeys(len(rows))
	if err := WriteColumnCSV(KeyTablePath, KeyColumn, keys); err != nil {
		return CleanResult{}, fmt.Errorf("write %s: %w", KeyTablePath, err)
	}

	return CleanResult{Format: format, Rows: rows, KeyPath: KeyTablePath, Keys: len(keys)}, nil
}
