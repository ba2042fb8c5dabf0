package mindguard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultDatasetPath is the training file read from the working directory.
const DefaultDatasetPath = "mental_stress_data.csv"

// A missing text cell is read as this marker and trained on like any other
// word.
const missingText = "nan"

// naValues are the cell values read as missing, the same set pandas uses by
// default.
var naValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// LoadCSV reads (text, label) records from the CSV file at path. A missing
// file yields an error wrapping ErrDatasetMissing.
func LoadCSV(path string) ([]Record, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, path)
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := LoadCSVFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadCSVFrom reads records from CSV data whose header names a "text" and a
// "label" column, in any position. Other columns are ignored, and when a
// name repeats the first column with it is used.
//
// Quotes inside an unquoted field are kept as ordinary characters.
func LoadCSVFrom(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoTrainingData
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	textCol, labelCol := -1, -1
	for i, name := range header {
		switch strings.TrimPrefix(name, "\ufeff") {
		case "text":
			if textCol < 0 {
				textCol = i
			}
		case "label":
			if labelCol < 0 {
				labelCol = i
			}
		}
	}
	if textCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("header %q must contain \"text\" and \"label\" columns", header)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		text, label := row[textCol], row[labelCol]
		if naValues[label] {
			return nil, fmt.Errorf("line %d: missing label %q", line, label)
		}
		if naValues[text] {
			text = missingText
		}
		records = append(records, Record{Text: text, Label: Label(label)})
	}

	if len(records) == 0 {
		return nil, ErrNoTrainingData
	}
	return records, nil
}
