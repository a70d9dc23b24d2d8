// Package report prints the end-of-run summary of the docbatch CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/ukaji3/docbatch-go/pkg/docbatch"
	"github.com/ukaji3/docbatch-go/pkg/docbatch/models"
)

// Status lines printed after the summary.
const (
	StatusDone   = "✅ Process completed."
	StatusFailed = "❌ Process stopped:"
)

// Write prints the run summary, the recovered messages and the final status line.
func Write(w io.Writer, result *docbatch.Result, runErr error) error {
	if result == nil {
		result = &docbatch.Result{}
	}

	if _, err := fmt.Fprintln(w, Summary(result, isTerminal(w))); err != nil {
		return err
	}
	for _, msg := range result.Messages() {
		if _, err := fmt.Fprintf(w, "❌ %s\n", msg); err != nil {
			return err
		}
	}

	var err error
	if runErr != nil {
		_, err = fmt.Fprintln(w, StatusFailed, runErr)
	} else {
		_, err = fmt.Fprintln(w, StatusDone)
	}
	return err
}

// Summary renders the run counters as a table.
func Summary(result *docbatch.Result, styled bool) string {
	var documents, spreadsheets int
	for _, a := range result.Artifacts {
		switch a.Kind {
		case models.KindDocument:
			documents++
		case models.KindSpreadsheet:
			spreadsheets++
		}
	}

	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"Item", "Count"})
	tw.AppendRows([]table.Row{
		{"Orders", strconv.Itoa(result.Orders)},
		{"Folder trees", strconv.Itoa(len(result.Folders))},
		{"Folder errors", strconv.Itoa(len(result.FolderErrors))},
		{"Documents", strconv.Itoa(documents)},
		{"Spreadsheets", strconv.Itoa(spreadsheets)},
		{"Skipped", strconv.Itoa(len(result.Skipped))},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
