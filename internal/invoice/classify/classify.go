// Package classify derives an invoice's kind and settlement currency.
//
// Historically the kind was never stored: it was smuggled through free-text
// notes on the invoice and its lines ("[INVOICE_TYPE:...]", "MOTORCYCLE:",
// "PAYMENT:"). Classify is the single canonical reading of those markers.
// New invoices persist the result at write time; the text rules remain only
// for backfilling legacy rows.
package classify

import "strings"

// Kind is the derived invoice category.
type Kind string

const (
	KindWholesaleMotorcycle Kind = "wholesale_motorcycle"
	KindWholesaleProduct    Kind = "wholesale_product"
	KindRetailMotorcycle    Kind = "retail_motorcycle"
	KindRetailProduct       Kind = "retail_product"
	KindPayment             Kind = "payment"
	KindUnknown             Kind = "unknown"
)

// Currency codes used across the system.
const (
	CurrencyIQD = "IQD"
	CurrencyUSD = "USD"
)

// Sale types: JUMLA is wholesale, MUFRAD is retail.
const (
	SaleTypeWholesale = "JUMLA"
	SaleTypeRetail    = "MUFRAD"
)

// Item is the classification view of an invoice line.
type Item struct {
	HasProductRef bool
	ProductName   string
	Notes         string
}

// Input is the classification view of an invoice.
type Input struct {
	Notes    string
	SaleType string
	Items    []Item
}

// Result carries the derived kind and currency.
type Result struct {
	Kind       Kind
	Motorcycle bool
	Currency   string
}

const (
	markerInvoiceType = "[INVOICE_TYPE:"
	markerMotorcycle  = "MOTORCYCLE"
	markerPayment     = "PAYMENT"
	prefixPayment     = "PAYMENT:"
	prefixMotorcycle  = "MOTORCYCLE:"
)

// Classify applies the marker rules in order, first match wins.
// Empty input falls through to retail product in IQD; that silent default
// is deliberate and matched by callers.
func Classify(in Input) Result {
	notes := strings.ToUpper(in.Notes)

	if isPayment(notes, in.Items) {
		return Result{Kind: KindPayment, Currency: CurrencyIQD}
	}

	motorcycle := isMotorcycle(notes, in.Items)

	wholesale := strings.EqualFold(strings.TrimSpace(in.SaleType), SaleTypeWholesale)

	result := Result{Motorcycle: motorcycle, Currency: CurrencyIQD}
	if motorcycle {
		result.Currency = CurrencyUSD
	}

	switch {
	case wholesale && motorcycle:
		result.Kind = KindWholesaleMotorcycle
	case wholesale:
		result.Kind = KindWholesaleProduct
	case motorcycle:
		result.Kind = KindRetailMotorcycle
	default:
		result.Kind = KindRetailProduct
	}
	return result
}

func isPayment(upperNotes string, items []Item) bool {
	if strings.Contains(upperNotes, markerPayment) {
		return true
	}
	for _, item := range items {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(item.Notes)), prefixPayment) {
			return true
		}
	}
	return false
}

func isMotorcycle(upperNotes string, items []Item) bool {
	// Explicit tag on the invoice itself.
	if strings.Contains(upperNotes, markerInvoiceType) && strings.Contains(upperNotes, markerMotorcycle) {
		return true
	}

	// A line without a catalog reference carrying a motorcycle marker.
	for _, item := range items {
		if item.HasProductRef {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(item.Notes)), prefixMotorcycle) {
			return true
		}
	}

	// Last resort: the word appears anywhere in a line's name or notes.
	for _, item := range items {
		if containsFold(item.ProductName, markerMotorcycle) || containsFold(item.Notes, markerMotorcycle) {
			return true
		}
	}

	return false
}

func containsFold(s, upperSub string) bool {
	return strings.Contains(strings.ToUpper(s), upperSub)
}
