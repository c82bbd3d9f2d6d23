package dto

import "github.com/shopspring/decimal"

// SalesReportRequest período do relatório (formato 2006-01-02).
type SalesReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	TopN      int    `query:"top_n"`
}

// TopProductDTO linha do ranking de mais vendidos.
type TopProductDTO struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitsSold   int             `json:"unitsSold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// SalesReportDTO relatório de vendas do período.
type SalesReportDTO struct {
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	OrderCount     int             `json:"orderCount"`
	CancelledCount int             `json:"cancelledCount"`
	Revenue        decimal.Decimal `json:"revenue"`
	AvgOrderValue  decimal.Decimal `json:"avgOrderValue"`
	TopProducts    []TopProductDTO `json:"topProducts"`
}
