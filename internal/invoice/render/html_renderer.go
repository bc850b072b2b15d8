// Package render produces the printable HTML rendition of an invoice.
// The document is self-contained: inline CSS, locale-driven direction and
// font stack, and a script that opens the browser print dialog on load.
package render

import (
	"bytes"
	"html/template"

	"github.com/zagros/backoffice/internal/config"
)

type Line struct {
	Description string
	Quantity    int64
	UnitPrice   string
	Amount      string
}

type Document struct {
	CompanyName  string
	CompanyPhone string

	Number    string
	Status    string
	IssueDate string
	DueDate   string
	Currency  string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	Lines []Line

	Subtotal  string
	Discount  string
	Tax       string
	Total     string
	AmountDue string

	Notes string
}

type page struct {
	Document
	Dir       string
	FontStack template.CSS
	Labels    labels
}

type labels struct {
	Invoice, Issued, Due, Status, BillTo          string
	Description, Qty, UnitPrice, Amount           string
	Subtotal, Discount, Tax, Total, AmountDue     string
	Notes                                         string
}

// UI strings per locale. Sorani Kurdish and Arabic share the script but not
// the vocabulary.
var labelSets = map[string]labels{
	config.LocaleEnglish: {
		Invoice: "Invoice", Issued: "Issued", Due: "Due", Status: "Status", BillTo: "Bill to",
		Description: "Description", Qty: "Qty", UnitPrice: "Unit price", Amount: "Amount",
		Subtotal: "Subtotal", Discount: "Discount", Tax: "Tax", Total: "Total", AmountDue: "Amount due",
		Notes: "Notes",
	},
	config.LocaleArabic: {
		Invoice: "فاتورة", Issued: "تاريخ الإصدار", Due: "تاريخ الاستحقاق", Status: "الحالة", BillTo: "الزبون",
		Description: "الوصف", Qty: "الكمية", UnitPrice: "سعر الوحدة", Amount: "المبلغ",
		Subtotal: "المجموع الفرعي", Discount: "الخصم", Tax: "الضريبة", Total: "المجموع", AmountDue: "المبلغ المستحق",
		Notes: "ملاحظات",
	},
	config.LocaleKurdish: {
		Invoice: "پسوولە", Issued: "بەرواری دەرچوون", Due: "بەرواری پارەدان", Status: "دۆخ", BillTo: "کڕیار",
		Description: "ناو", Qty: "ژمارە", UnitPrice: "نرخی دانە", Amount: "بڕ",
		Subtotal: "کۆی بەشەکی", Discount: "داشکاندن", Tax: "باج", Total: "کۆی گشتی", AmountDue: "بڕی ماوە",
		Notes: "تێبینی",
	},
}

const rtlFontStack = `"Noto Naskh Arabic", "Noto Kufi Arabic", Tahoma, sans-serif`
const ltrFontStack = `"Helvetica Neue", Arial, sans-serif`

var pageTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html dir="{{.Dir}}">
<head>
<meta charset="utf-8">
<title>{{.Labels.Invoice}} {{.Number}}</title>
<style>
  body { font-family: {{.FontStack}}; margin: 24px; color: #1a1f36; }
  header { display: flex; justify-content: space-between; margin-bottom: 24px; }
  h1 { font-size: 22px; margin: 0 0 4px 0; }
  .meta { font-size: 13px; line-height: 1.6; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th, td { border-bottom: 1px solid #ddd; padding: 6px 8px; text-align: start; }
  th { background: #f3f4f6; }
  td.num, th.num { text-align: end; }
  .totals { margin-top: 16px; width: 40%; margin-inline-start: auto; font-size: 13px; }
  .totals div { display: flex; justify-content: space-between; padding: 3px 0; }
  .totals .grand { font-weight: bold; border-top: 1px solid #1a1f36; }
  .notes { margin-top: 24px; font-size: 12px; white-space: pre-wrap; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Labels.Invoice}} {{.Number}}</h1>
    <div class="meta">
      <div>{{.Labels.Issued}}: {{.IssueDate}}</div>
      {{if .DueDate}}<div>{{.Labels.Due}}: {{.DueDate}}</div>{{end}}
      <div>{{.Labels.Status}}: {{.Status}}</div>
    </div>
  </div>
  <div class="meta">
    <strong>{{.CompanyName}}</strong><br>
    {{.CompanyPhone}}<br><br>
    <strong>{{.Labels.BillTo}}</strong><br>
    {{.CustomerName}}<br>
    {{.CustomerPhone}}<br>
    {{.CustomerAddress}}
  </div>
</header>
<table>
  <thead>
    <tr>
      <th>{{.Labels.Description}}</th>
      <th class="num">{{.Labels.Qty}}</th>
      <th class="num">{{.Labels.UnitPrice}}</th>
      <th class="num">{{.Labels.Amount}}</th>
    </tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.Amount}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<div class="totals">
  <div><span>{{.Labels.Subtotal}}</span><span>{{.Subtotal}} {{.Currency}}</span></div>
  <div><span>{{.Labels.Discount}}</span><span>{{.Discount}} {{.Currency}}</span></div>
  <div><span>{{.Labels.Tax}}</span><span>{{.Tax}} {{.Currency}}</span></div>
  <div class="grand"><span>{{.Labels.Total}}</span><span>{{.Total}} {{.Currency}}</span></div>
  <div class="grand"><span>{{.Labels.AmountDue}}</span><span>{{.AmountDue}} {{.Currency}}</span></div>
</div>
{{if .Notes}}<div class="notes"><strong>{{.Labels.Notes}}</strong><br>{{.Notes}}</div>{{end}}
<script>window.addEventListener("load", function () { window.print(); });</script>
</body>
</html>
`))

// HTML renders the document for the given locale.
func HTML(doc Document, locale string) (string, error) {
	set, ok := labelSets[locale]
	if !ok {
		set = labelSets[config.LocaleKurdish]
	}

	dir := "ltr"
	fonts := ltrFontStack
	if config.RTL(locale) {
		dir = "rtl"
		fonts = rtlFontStack
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, page{
		Document:  doc,
		Dir:       dir,
		FontStack: template.CSS(fonts),
		Labels:    set,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
