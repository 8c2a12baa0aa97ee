package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/douanani/rihladz-admin/pkg/workflow"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" record")
	default:
		_, _ = c.Println(" records")
	}
}

// Grid prints a collection page as an aligned table, with selected rows
// marked.
func (pp *PrettyPrint) Grid(headers []string, rows [][]string, selected []bool) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50

	head := make([]interface{}, 0, len(headers)+1)
	head = append(head, "")
	for _, h := range headers {
		head = append(head, color.New(color.Bold).Sprint(h))
	}
	tbl.AddRow(head...)

	for i, row := range rows {
		mark := " "
		if i < len(selected) && selected[i] {
			mark = color.New(color.FgHiYellow).Sprint("*")
		}
		cells := make([]interface{}, 0, len(row)+1)
		cells = append(cells, mark)
		for _, cell := range row {
			cells = append(cells, cell)
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Summary prints the screen's one-line summary, faint.
func (pp *PrettyPrint) Summary(line string) {
	f := color.New(color.Faint)
	_, _ = f.Println(line)
}

// Pager prints the page window, faint, e.g. "page 2 of 5 (42 filtered of 57)".
func (pp *PrettyPrint) Pager(pageIndex, pageCount, filtered, total int) {
	f := color.New(color.Faint)
	if filtered == total {
		_, _ = f.Printf("page %d of %d (%d records)\n", pageIndex+1, pageCount, total)
		return
	}
	_, _ = f.Printf("page %d of %d (%d filtered of %d)\n", pageIndex+1, pageCount, filtered, total)
}

// Tally prints the report workflow counts.
func (pp *PrettyPrint) Tally(t workflow.Tally) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(color.New(color.Bold).Sprint("Status"), color.New(color.Bold).Sprint("Count"))
	tbl.AddRow("pending", t.Pending)
	tbl.AddRow("reviewed", t.Reviewed)
	tbl.AddRow("ignored", t.Ignored)
	tbl.AddRow(color.New(color.Bold).Sprint("total"), color.New(color.Bold).Sprint(t.Total()))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Details prints a record's detail text with a faint rule underneath.
func (pp *PrettyPrint) Details(text string) {
	fmt.Println(text)
	f := color.New(color.Faint)
	_, _ = f.Println(strings.Repeat("-", 40))
}

func (pp *PrettyPrint) Notice(format string, args ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Printf(format+"\n", args...)
}

func (pp *PrettyPrint) Problem(format string, args ...interface{}) {
	r := color.New(color.FgRed)
	_, _ = r.Printf(format+"\n", args...)
}
