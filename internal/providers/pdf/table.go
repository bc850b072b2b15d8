package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/zagros/backoffice/internal/export"
)

// TableData is a generic column/row listing, used for the product and
// customer catalog exports.
type TableData struct {
	Title   string
	Columns []export.Column
	Rows    []map[string]string
}

// maroto lays rows out on a 12-column grid.
const gridWidth = 12

func (p *PDFProvider) GenerateTable(ctx context.Context, data TableData) (io.Reader, error) {
	m := maroto.New(p.buildConfig())

	if p.settings.ShowHeader {
		m.AddRow(14,
			text.NewCol(8, p.settings.CompanyName, props.Text{Style: fontstyle.Bold, Size: 11}),
			text.NewCol(4, p.settings.CompanyPhone, props.Text{Align: align.Right}),
		)
	}

	m.AddRow(12,
		text.NewCol(gridWidth, data.Title, props.Text{
			Size:  float64(p.settings.TitleFontSize),
			Style: fontstyle.Bold,
		}),
	)

	columns := data.Columns
	if len(columns) > gridWidth {
		columns = columns[:gridWidth]
	}
	widths := columnWidths(len(columns))

	headerCols := make([]core.Col, 0, len(columns))
	for i, column := range columns {
		headerCols = append(headerCols, text.NewCol(widths[i], column.Title, props.Text{Style: fontstyle.Bold}))
	}
	m.AddRow(8, headerCols...)

	for _, row := range data.Rows {
		cols := make([]core.Col, 0, len(columns))
		for i, column := range columns {
			cols = append(cols, text.NewCol(widths[i], row[column.Key]))
		}
		m.AddRow(7, cols...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

// columnWidths spreads n columns over the grid, giving the leftovers to the
// first columns so every unit is used.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridWidth {
		n = gridWidth
	}
	base := gridWidth / n
	extra := gridWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
