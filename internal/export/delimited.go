package export

import (
	"encoding/csv"
	"io"
)

func WriteCSV(w io.Writer, s Sheet) error {
	return writeDelimited(w, s, ',')
}

// WriteTSV writes tab-separated output, which spreadsheet apps open directly.
func WriteTSV(w io.Writer, s Sheet) error {
	return writeDelimited(w, s, '\t')
}

func writeDelimited(w io.Writer, s Sheet, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep

	records := [][]string{{s.Title}, {s.generatedLine()}}
	for _, line := range s.Info {
		records = append(records, []string{line})
	}
	records = append(records, []string{""}, s.Headers)
	records = append(records, s.Rows...)

	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
