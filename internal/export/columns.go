// Package export turns entity rows into downloadable artifacts: xlsx
// workbooks, table PDFs and printable HTML.
package export

// Column is one exportable field of an entity.
type Column struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Default column sets, in presentation order.
var (
	ProductColumns = []Column{
		{Key: "sku", Title: "SKU"},
		{Key: "name", Title: "Name"},
		{Key: "category", Title: "Category"},
		{Key: "priceIqd", Title: "Price (IQD)"},
		{Key: "priceUsd", Title: "Price (USD)"},
		{Key: "stock", Title: "Stock"},
	}

	CustomerColumns = []Column{
		{Key: "name", Title: "Name"},
		{Key: "phone", Title: "Phone"},
		{Key: "city", Title: "City"},
		{Key: "address", Title: "Address"},
		{Key: "debtIqd", Title: "Debt (IQD)"},
		{Key: "debtUsd", Title: "Debt (USD)"},
	}

	MotorcycleColumns = []Column{
		{Key: "sku", Title: "SKU"},
		{Key: "brand", Title: "Brand"},
		{Key: "model", Title: "Model"},
		{Key: "year", Title: "Year"},
		{Key: "color", Title: "Color"},
		{Key: "chassisNo", Title: "Chassis No."},
		{Key: "priceUsd", Title: "Price (USD)"},
		{Key: "stock", Title: "Stock"},
	}
)

// Normalize resolves a user's column selection against the entity's default
// set. Output order always follows the default order, never the selection
// order, so toggling everything off and back on reproduces the original
// layout. Unknown keys are dropped; an empty selection means all columns.
func Normalize(selected []string, defaults []Column) []Column {
	if len(selected) == 0 {
		out := make([]Column, len(defaults))
		copy(out, defaults)
		return out
	}

	wanted := make(map[string]bool, len(selected))
	for _, key := range selected {
		wanted[key] = true
	}

	out := make([]Column, 0, len(defaults))
	for _, column := range defaults {
		if wanted[column.Key] {
			out = append(out, column)
		}
	}
	if len(out) == 0 {
		out = make([]Column, len(defaults))
		copy(out, defaults)
	}
	return out
}
