package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/douanani/rihladz-admin/pkg/printers"
	"github.com/douanani/rihladz-admin/pkg/screen"
)

type List struct {
	Table    screen.Table
	Query    string
	Page     int
	PageSize int
}

func (n *List) Do(ctx context.Context) error {
	if n.Table == nil {
		return errors.New("can not list, no screen")
	}

	pp := printers.PrettyPrint{}

	if err := n.Table.Load(ctx); err != nil {
		return err
	}
	if n.Query != "" {
		n.Table.SetQuery(n.Query)
	}
	if n.PageSize > 0 {
		n.Table.SetPageSize(n.PageSize)
	}
	for p := 0; p < n.Page; p++ {
		n.Table.NextPage()
	}

	fmt.Println("")
	pp.TitleWithCount(n.Table.Name(), n.Table.Total())

	headers := make([]string, 0, len(n.Table.Columns()))
	for _, col := range n.Table.Columns() {
		headers = append(headers, col.Title)
	}
	pp.Grid(headers, n.Table.Rows(), nil)
	pp.Summary(n.Table.SummaryLine())
	pp.Pager(n.Table.PageIndex(), n.Table.PageCount(), n.Table.TotalFiltered(), n.Table.Total())

	return nil
}
