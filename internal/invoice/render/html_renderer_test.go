package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		CompanyName:  "Zagros Trading",
		CompanyPhone: "0770 000 0000",
		Number:       "INV-20260301-000001",
		Status:       "finalized",
		IssueDate:    "2026-03-01",
		Currency:     "IQD",
		CustomerName: "Aram Rashid",
		Lines: []Line{
			{Description: "Oil filter", Quantity: 2, UnitPrice: "5000", Amount: "10000"},
		},
		Subtotal:  "10000",
		Discount:  "0",
		Tax:       "0",
		Total:     "10000",
		AmountDue: "10000",
	}
}

func TestHTMLDirectionPerLocale(t *testing.T) {
	cases := []struct {
		locale string
		dir    string
	}{
		{"ku", "rtl"},
		{"ar", "rtl"},
		{"en", "ltr"},
	}
	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			html, err := HTML(sampleDocument(), tc.locale)
			require.NoError(t, err)
			assert.Contains(t, html, `<html dir="`+tc.dir+`">`)
		})
	}
}

func TestHTMLContainsPrintTrigger(t *testing.T) {
	html, err := HTML(sampleDocument(), "en")
	require.NoError(t, err)
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "INV-20260301-000001")
	assert.Contains(t, html, "Oil filter")
}

func TestHTMLLocalizedLabels(t *testing.T) {
	html, err := HTML(sampleDocument(), "ku")
	require.NoError(t, err)
	assert.Contains(t, html, "پسوولە")

	html, err = HTML(sampleDocument(), "ar")
	require.NoError(t, err)
	assert.Contains(t, html, "فاتورة")
}

func TestHTMLEscapesUserContent(t *testing.T) {
	doc := sampleDocument()
	doc.Notes = `<script>alert("x")</script>`
	html, err := HTML(doc, "en")
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, `<script>alert`))
}

func TestHTMLUnknownLocaleFallsBackToKurdish(t *testing.T) {
	html, err := HTML(sampleDocument(), "de")
	require.NoError(t, err)
	assert.Contains(t, html, "پسوولە")
	assert.Contains(t, html, `<html dir="rtl">`)
}
