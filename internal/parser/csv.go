package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdsplit/internal/doctree"
)

// CSVParser handles CSV files, rendering row batches as markdown tables.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	root := &doctree.Node{
		Kind:  doctree.KindDocument,
		Title: stripExt(filename, ".csv"),
	}

	if len(records) == 0 {
		return root, nil
	}

	// First row is headers.
	headers := records[0]
	dataRows := records[1:]

	// Group rows into batches of 20 so a single table stays packable.
	const batchSize = 20

	for i := 0; i < len(dataRows); i += batchSize {
		end := i + batchSize
		if end > len(dataRows) {
			end = len(dataRows)
		}
		batch := dataRows[i:end]

		section := headingNode(2, fmt.Sprintf("Rows %d-%d", i+2, end+1)) // 1-indexed, skip header
		section.Children = append(section.Children, &doctree.Node{
			Kind: doctree.KindList,
			Text: markdownTable(headers, batch) + "\n",
		})
		root.Children = append(root.Children, section)
	}

	return root, nil
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(headers))
		for j := range headers {
			if j < len(row) {
				cells[j] = strings.ReplaceAll(row[j], "|", "\\|")
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}
