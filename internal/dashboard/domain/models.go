package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Money is a per-currency amount pair. The business runs a dual-currency
// book: dinar for parts, dollars for motorcycles.
type Money struct {
	IQD decimal.Decimal `json:"iqd"`
	USD decimal.Decimal `json:"usd"`
}

type Counts struct {
	Customers   int64 `json:"customers"`
	Products    int64 `json:"products"`
	Motorcycles int64 `json:"motorcycles"`
	Invoices    int64 `json:"invoices"`
	Employees   int64 `json:"employees"`
}

type Debtor struct {
	ID      snowflake.ID    `json:"id"`
	Name    string          `json:"name"`
	DebtIQD decimal.Decimal `json:"debtIqd"`
	DebtUSD decimal.Decimal `json:"debtUsd"`
}

type LowStockItem struct {
	ID    snowflake.ID `json:"id"`
	SKU   string       `json:"sku"`
	Name  string       `json:"name"`
	Stock int64        `json:"stock"`
}

type RecentInvoice struct {
	ID       snowflake.ID    `json:"id"`
	Number   string          `json:"number"`
	Status   string          `json:"status"`
	Kind     string          `json:"kind"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
	IssuedAt *time.Time      `json:"issuedAt,omitempty"`
}

// Summary is the home-screen payload.
type Summary struct {
	Counts         Counts          `json:"counts"`
	Revenue        Money           `json:"revenue"`
	Receivables    Money           `json:"receivables"`
	PaymentsToday  Money           `json:"paymentsToday"`
	TopDebtors     []Debtor        `json:"topDebtors"`
	LowStock       []LowStockItem  `json:"lowStock"`
	RecentInvoices []RecentInvoice `json:"recentInvoices"`
}

type Service interface {
	Summary(ctx context.Context) (Summary, error)
}
