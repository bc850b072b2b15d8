package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Result
	}{
		{
			name: "empty input defaults to retail product IQD",
			in:   Input{},
			want: Result{Kind: KindRetailProduct, Motorcycle: false, Currency: CurrencyIQD},
		},
		{
			name: "payment marker in notes wins over everything",
			in: Input{
				Notes: "payment invoice for خالد",
				Items: []Item{{Notes: "MOTORCYCLE: Honda CG125"}},
			},
			want: Result{Kind: KindPayment, Currency: CurrencyIQD},
		},
		{
			name: "payment prefix on an item",
			in: Input{
				Items: []Item{{Notes: "  payment: march installment "}},
			},
			want: Result{Kind: KindPayment, Currency: CurrencyIQD},
		},
		{
			name: "invoice type tag with motorcycle and wholesale sale",
			in: Input{
				Notes:    "[INVOICE_TYPE:wholesale-motorcycle]",
				SaleType: "JUMLA",
			},
			want: Result{Kind: KindWholesaleMotorcycle, Motorcycle: true, Currency: CurrencyUSD},
		},
		{
			name: "invoice type tag without motorcycle word is not enough",
			in: Input{
				Notes: "[INVOICE_TYPE:wholesale-product]",
			},
			want: Result{Kind: KindRetailProduct, Currency: CurrencyIQD},
		},
		{
			name: "productless item with motorcycle prefix",
			in: Input{
				Items: []Item{
					{HasProductRef: true, ProductName: "Oil filter"},
					{Notes: " motorcycle: Suzuki GD110 2024 "},
				},
			},
			want: Result{Kind: KindRetailMotorcycle, Motorcycle: true, Currency: CurrencyUSD},
		},
		{
			name: "motorcycle prefix ignored when item has a product ref",
			in: Input{
				Items: []Item{{HasProductRef: true, Notes: "MOTORCYCLE: leftover tag", ProductName: "Chain set"}},
			},
			// rule 4 still catches it via the notes substring
			want: Result{Kind: KindRetailMotorcycle, Motorcycle: true, Currency: CurrencyUSD},
		},
		{
			name: "motorcycle substring in product name",
			in: Input{
				Items: []Item{{HasProductRef: true, ProductName: "Motorcycle helmet strap"}},
			},
			want: Result{Kind: KindRetailMotorcycle, Motorcycle: true, Currency: CurrencyUSD},
		},
		{
			name: "wholesale product",
			in: Input{
				SaleType: "JUMLA",
				Items:    []Item{{HasProductRef: true, ProductName: "Engine oil"}},
			},
			want: Result{Kind: KindWholesaleProduct, Currency: CurrencyIQD},
		},
		{
			name: "unrecognized sale type falls back to retail",
			in: Input{
				SaleType: "WHOLESALE",
				Items:    []Item{{HasProductRef: true, ProductName: "Engine oil"}},
			},
			want: Result{Kind: KindRetailProduct, Currency: CurrencyIQD},
		},
		{
			name: "mufrad sale with plain items",
			in: Input{
				SaleType: "MUFRAD",
				Items:    []Item{{HasProductRef: true, ProductName: "Brake pads"}},
			},
			want: Result{Kind: KindRetailProduct, Currency: CurrencyIQD},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestClassifyPaymentRegardlessOfItems(t *testing.T) {
	// Any casing of the payment marker in invoice notes forces the payment
	// kind even when every line screams motorcycle.
	for _, notes := range []string{"PAYMENT", "Payment received", "partial payment"} {
		got := Classify(Input{
			Notes: notes,
			Items: []Item{
				{Notes: "MOTORCYCLE: Yamaha"},
				{HasProductRef: true, ProductName: "Motorcycle mirror"},
			},
		})
		assert.Equal(t, KindPayment, got.Kind, "notes=%q", notes)
	}
}
