package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type InvoiceData struct {
	Number    string
	Kind      string
	Status    string
	IssueDate string
	DueDate   string
	Currency  string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	Items []InvoiceItemData

	Subtotal  string
	Discount  string
	Tax       string
	Total     string
	AmountDue string
}

type InvoiceItemData struct {
	Description string
	Qty         int64
	UnitPrice   string
	Amount      string
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	m := maroto.New(p.buildConfig())

	if p.settings.ShowHeader {
		if logo := p.logoPath(); logo != "" {
			m.AddRow(30,
				image.NewFromFileCol(3, logo, props.Rect{Percent: 80}),
				col.New(5),
				col.New(4).Add(
					text.New(p.settings.CompanyName, props.Text{Style: fontstyle.Bold, Align: align.Right}),
					text.New(p.settings.CompanyPhone, props.Text{Top: 5, Align: align.Right}),
				),
			)
		} else {
			m.AddRow(20,
				col.New(8).Add(
					text.New(p.settings.CompanyName, props.Text{Style: fontstyle.Bold, Size: 12}),
					text.New(p.settings.CompanyPhone, props.Text{Top: 6}),
				),
				col.New(4),
			)
		}
	}

	m.AddRow(12,
		text.NewCol(12, "Invoice "+data.Number, props.Text{
			Size:  float64(p.settings.TitleFontSize),
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(22,
		col.New(6).Add(
			text.New("Issued: "+data.IssueDate, props.Text{Top: 0}),
			text.New("Due: "+data.DueDate, props.Text{Top: 5}),
			text.New("Status: "+data.Status, props.Text{Top: 10}),
			text.New("Currency: "+data.Currency, props.Text{Top: 15}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(data.CustomerName, props.Text{Top: 5}),
			text.New(data.CustomerPhone, props.Text{Top: 10}),
			text.New(data.CustomerAddress, props.Text{Top: 15}),
		),
	)

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal"),
		text.NewCol(2, data.Subtotal, props.Text{Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Discount"),
		text.NewCol(2, data.Discount, props.Text{Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Tax"),
		text.NewCol(2, data.Tax, props.Text{Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, data.Total, props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Amount due", props.Text{Style: fontstyle.Bold}),
		text.NewCol(2, data.AmountDue, props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)

	if p.settings.ShowFooter {
		m.AddRow(12,
			text.NewCol(12, p.settings.CompanyName+"  "+p.settings.CompanyPhone, props.Text{
				Size:  8,
				Top:   4,
				Align: align.Center,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
