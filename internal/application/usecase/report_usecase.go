package usecase

import (
	"context"
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

const (
	defaultTopN = 10
	maxTopN     = 100
)

// ReportUseCase gera o relatório de vendas do painel (JSON e PDF).
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     ReportPDFGenerator
}

// NewReportUseCase constrói o caso de uso. pdfGen pode ser nil (sem exportação).
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// GetSalesReport calcula os agregados do período e o ranking de produtos.
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesReportDTO, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	summary, err := uc.reportRepo.GetSalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, start, end, topN)
	if err != nil {
		return nil, err
	}

	report := &dto.SalesReportDTO{
		StartDate:      start.Format("2006-01-02"),
		EndDate:        end.Format("2006-01-02"),
		OrderCount:     summary.OrderCount,
		CancelledCount: summary.CancelledCount,
		Revenue:        summary.Revenue,
		AvgOrderValue:  summary.AvgOrderValue,
		TopProducts:    make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, row := range top {
		report.TopProducts = append(report.TopProducts, dto.TopProductDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
			Revenue:     row.Revenue,
		})
	}
	return report, nil
}

// ExportSalesReportPDF gera o relatório e o renderiza em PDF.
func (uc *ReportUseCase) ExportSalesReportPDF(ctx context.Context, req dto.SalesReportRequest) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.GetSalesReport(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateSalesReportPDF(ctx, report)
}

// parsePeriod interpreta o período; sem datas, usa os últimos 30 dias.
func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now
	var err error
	if startStr != "" {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if endStr != "" {
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		// Inclui o dia final inteiro.
		end = end.AddDate(0, 0, 1).Add(-time.Second)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}
