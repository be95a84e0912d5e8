package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"wordsieve/internal/wordlist"
)

func printSummary(out io.Writer, opts wordlist.Options, summary wordlist.Summary) {
	rows := [][]string{
		{"lines", strconv.Itoa(summary.Lines)},
		{"accepted", strconv.Itoa(summary.Accepted)},
		{"below cutoff", strconv.Itoa(summary.BelowCutoff)},
		{"rejected", strconv.Itoa(summary.Rejected)},
	}
	fmt.Fprintln(out, renderTable([]string{"Records", "Count"}, rows, isTerminal(out)))
	fmt.Fprintf(out, "cutoff %d, wrote %s\n", opts.Cutoff, opts.OutputPath)
}

func renderTable(headers []string, rows [][]string, rounded bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	// Counts in the last column are right-aligned.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: columns, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
