package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de leitura para relatórios.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesSummary agrega pedidos do período. Pedidos cancelados ficam
// fora da receita mas são contados à parte.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummaryResult, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status <> 'cancelled')           AS order_count,
			COALESCE(SUM(total) FILTER (WHERE status <> 'cancelled'), 0) AS revenue,
			COALESCE(AVG(total) FILTER (WHERE status <> 'cancelled'), 0) AS avg_order_value,
			COUNT(*) FILTER (WHERE status = 'cancelled')            AS cancelled_count
		FROM orders
		WHERE created_at >= $1 AND created_at < $2`

	var res repository.SalesSummaryResult
	err := r.q.QueryRow(ctx, query, start, end).Scan(
		&res.OrderCount, &res.Revenue, &res.AvgOrderValue, &res.CancelledCount,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &res, nil
}

// GetTopProducts ranking de produtos por unidades vendidas no período.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT oi.product_id, oi.product_name,
		       SUM(oi.quantity)::int AS units_sold,
		       COALESCE(SUM(oi.subtotal), 0) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		  AND o.status <> 'cancelled'
		GROUP BY oi.product_id, oi.product_name
		ORDER BY units_sold DESC, revenue DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top products rows: %w", err)
	}
	return out, nil
}
