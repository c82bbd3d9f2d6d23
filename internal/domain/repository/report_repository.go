package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult linha do ranking de produtos mais vendidos no período.
type TopProductResult struct {
	ProductID   string
	ProductName string
	UnitsSold   int
	Revenue     decimal.Decimal
}

// SalesSummaryResult agregados de vendas do período.
type SalesSummaryResult struct {
	OrderCount     int
	Revenue        decimal.Decimal
	AvgOrderValue  decimal.Decimal
	CancelledCount int
}

// ReportRepository consultas de leitura para os relatórios do painel.
type ReportRepository interface {
	GetSalesSummary(ctx context.Context, start, end time.Time) (*SalesSummaryResult, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
}
