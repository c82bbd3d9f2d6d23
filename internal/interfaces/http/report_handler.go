package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
)

// ReportHandler relatórios de vendas do painel (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Relatório de vendas do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Início (2006-01-02)"
// @Param        end_date    query  string  false  "Fim (2006-01-02, inclusivo)"
// @Param        top_n       query  int     false  "Tamanho do ranking"  default(10)
// @Success      200  {object}  dto.SalesReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	req := salesReportRequest(c)
	out, err := h.uc.GetSalesReport(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido (formato 2006-01-02)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Relatório de vendas em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Início (2006-01-02)"
// @Param        end_date    query  string  false  "Fim (2006-01-02, inclusivo)"
// @Param        top_n       query  int     false  "Tamanho do ranking"  default(10)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	req := salesReportRequest(c)
	pdfBytes, err := h.uc.ExportSalesReportPDF(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido (formato 2006-01-02)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-vendas.pdf"`)
	return c.Send(pdfBytes)
}

func salesReportRequest(c *fiber.Ctx) dto.SalesReportRequest {
	return dto.SalesReportRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		TopN:      c.QueryInt("top_n", 0),
	}
}
