package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// fakeReportRepo devolve agregados fixos e registra o período e o limite
// pedidos, para inspecionar a normalização de parâmetros.
type fakeReportRepo struct {
	start, end time.Time
	limit      int
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (r *fakeReportRepo) GetSalesSummary(_ context.Context, start, end time.Time) (*repository.SalesSummaryResult, error) {
	r.start, r.end = start, end
	revenue, _ := decimal.NewFromString("1200.50")
	avg, _ := decimal.NewFromString("400.17")
	return &repository.SalesSummaryResult{
		OrderCount:     3,
		Revenue:        revenue,
		AvgOrderValue:  avg,
		CancelledCount: 1,
	}, nil
}

func (r *fakeReportRepo) GetTopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.TopProductResult, error) {
	r.limit = limit
	revenue, _ := decimal.NewFromString("717.50")
	return []repository.TopProductResult{
		{ProductID: "p1", ProductName: "Filtro de óleo", UnitsSold: 20, Revenue: revenue},
	}, nil
}

func TestSalesReport_PeriodoExplicito(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := usecase.NewReportUseCase(repo, nil)

	out, err := uc.GetSalesReport(context.Background(), dto.SalesReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", out.StartDate)
	assert.Equal(t, "2026-08-31", out.EndDate)
	assert.Equal(t, 3, out.OrderCount)
	assert.Equal(t, 1, out.CancelledCount)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "Filtro de óleo", out.TopProducts[0].ProductName)

	// O dia final entra inteiro no intervalo consultado.
	assert.Equal(t, 31, repo.end.Day())
	assert.True(t, repo.end.Hour() == 23 && repo.end.Minute() == 59)
}

func TestSalesReport_TopNNormalizado(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := usecase.NewReportUseCase(repo, nil)

	_, err := uc.GetSalesReport(context.Background(), dto.SalesReportRequest{TopN: 0})
	require.NoError(t, err)
	assert.Equal(t, 10, repo.limit, "TopN ausente usa o default")

	_, err = uc.GetSalesReport(context.Background(), dto.SalesReportRequest{TopN: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.limit, "TopN exagerado é limitado ao teto")
}

func TestSalesReport_PeriodoInvalido(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, nil)

	cases := []dto.SalesReportRequest{
		{StartDate: "01/08/2026"},
		{EndDate: "ontem"},
		{StartDate: "2026-08-31", EndDate: "2026-08-01"},
	}
	for _, in := range cases {
		_, err := uc.GetSalesReport(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v deve ser rejeitado", in)
	}
}

func TestExportPDF_SemGeradorConfigurado(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.ExportSalesReportPDF(context.Background(), dto.SalesReportRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
