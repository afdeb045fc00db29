package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commerce-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

// WarehouseRepository é a interface estreita de leitura sobre o dataset
// analítico. O motor de métricas nunca monta SQL fora daqui.
type WarehouseRepository interface {
	// GetDailyFacts retorna a linha da view diária para a conta e data, ou
	// nil quando a view ainda não tem a data (ausência não é erro)
	GetDailyFacts(accountID string, date time.Time) (*domain.DailyFacts, error)

	// GetWindowFacts agrega a view diária sobre uma janela fechada
	// [startDate, endDate]; nil quando não há nenhuma linha na janela
	GetWindowFacts(accountID string, startDate, endDate time.Time) (*domain.DailyFacts, error)

	// GetMTDFacts retorna o acumulado do mês até a data; nil quando o
	// warehouse não tem a linha (o chamador degrada para zeros)
	GetMTDFacts(accountID string, date time.Time) (*domain.MTDFacts, error)

	// GetTrafficRows retorna as linhas de tráfego atribuído da janela
	GetTrafficRows(accountID string, startDate, endDate time.Time) ([]*domain.TrafficRow, error)

	// GetFunnelSteps retorna as contagens do funil da janela, já na ordem
	// canônica das etapas
	GetFunnelSteps(accountID string, startDate, endDate time.Time) ([]domain.FunnelStep, error)
}

type warehouseRepository struct {
	conn   *postgres.Connection
	schema string
}

// NewWarehouseRepository cria o repositório de leitura do warehouse. O
// schema do dataset vem da configuração, nunca de estado global.
func NewWarehouseRepository(conn *postgres.Connection, cfg config.Warehouse) WarehouseRepository {
	return &warehouseRepository{
		conn:   conn,
		schema: cfg.Schema,
	}
}

func (r *warehouseRepository) table(name string) string {
	return fmt.Sprintf("%s.%s", r.schema, name)
}

func (r *warehouseRepository) GetDailyFacts(accountID string, date time.Time) (*domain.DailyFacts, error) {
	query, args, err := squirrel.
		Select(
			"dm.total_revenue",
			"dm.total_orders",
			"dm.avg_order_value",
			"dm.total_sessions",
			"dm.conversion_rate_pct",
			"dm.google_ads_cost",
			"dm.meta_ads_spend",
		).
		From(r.table("daily_metrics") + " dm").
		Where(squirrel.Eq{"dm.account_id": accountID, "dm.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	facts := &domain.DailyFacts{
		AccountID: accountID,
		Date:      date,
	}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&facts.Revenue,
		&facts.Orders,
		&facts.AOV,
		&facts.Sessions,
		&facts.ConversionRatePct,
		&facts.GoogleAdsSpend,
		&facts.MetaAdsSpend,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
	}

	return facts, nil
}

func (r *warehouseRepository) GetWindowFacts(accountID string, startDate, endDate time.Time) (*domain.DailyFacts, error) {
	// AOV e CVR são recalculados dos totais da janela pelo resolvedor; a
	// view só fornece as somas.
	query, args, err := squirrel.
		Select(
			"SUM(dm.total_revenue)",
			"SUM(dm.total_orders)",
			"SUM(dm.total_sessions)",
			"SUM(dm.google_ads_cost)",
			"SUM(dm.meta_ads_spend)",
		).
		From(r.table("daily_metrics") + " dm").
		Where(squirrel.Eq{"dm.account_id": accountID}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	facts := &domain.DailyFacts{
		AccountID: accountID,
		Date:      startDate,
	}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&facts.Revenue,
		&facts.Orders,
		&facts.Sessions,
		&facts.GoogleAdsSpend,
		&facts.MetaAdsSpend,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas da janela: %w", err)
	}

	// SUM sobre zero linhas devolve tudo nulo
	if facts.Revenue == nil && facts.Orders == nil && facts.Sessions == nil {
		return nil, nil
	}

	return facts, nil
}

func (r *warehouseRepository) GetMTDFacts(accountID string, date time.Time) (*domain.MTDFacts, error) {
	query, args, err := squirrel.
		Select("dm.mtd_revenue").
		From(r.table("daily_metrics") + " dm").
		Where(squirrel.Eq{"dm.account_id": accountID, "dm.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var mtdRevenue *float64

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&mtdRevenue); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear acumulado mensal: %w", err)
	}

	if mtdRevenue == nil {
		return nil, nil
	}

	return &domain.MTDFacts{MTDRevenue: *mtdRevenue}, nil
}

func (r *warehouseRepository) GetTrafficRows(accountID string, startDate, endDate time.Time) ([]*domain.TrafficRow, error) {
	query, args, err := squirrel.
		Select(
			"td.source",
			"td.medium",
			"SUM(td.sessions)",
			"SUM(td.conversions)",
			"SUM(td.revenue)",
		).
		From(r.table("traffic_daily") + " td").
		Where(squirrel.Eq{"td.account_id": accountID}).
		Where(squirrel.GtOrEq{"td.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"td.date": endDate.Format(time.DateOnly)}).
		GroupBy("td.source", "td.medium").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	trafficRows := make([]*domain.TrafficRow, 0)
	for rows.Next() {
		tr := &domain.TrafficRow{}
		if err := rows.Scan(&tr.Source, &tr.Medium, &tr.Sessions, &tr.Conversions, &tr.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de tráfego: %w", err)
		}
		trafficRows = append(trafficRows, tr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return trafficRows, nil
}

// funnelStepOrder fixa a ordem canônica das etapas na leitura
var funnelStepOrder = []string{
	domain.FunnelStepVisitors,
	domain.FunnelStepViewItem,
	domain.FunnelStepAddToCart,
	domain.FunnelStepBeginCheckout,
	domain.FunnelStepPurchase,
}

func (r *warehouseRepository) GetFunnelSteps(accountID string, startDate, endDate time.Time) ([]domain.FunnelStep, error) {
	query, args, err := squirrel.
		Select("fd.step", "SUM(fd.users)").
		From(r.table("funnel_daily") + " fd").
		Where(squirrel.Eq{"fd.account_id": accountID}).
		Where(squirrel.GtOrEq{"fd.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"fd.date": endDate.Format(time.DateOnly)}).
		GroupBy("fd.step").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	countsByStep := make(map[string]int)
	for rows.Next() {
		var step string
		var users int
		if err := rows.Scan(&step, &users); err != nil {
			return nil, fmt.Errorf("erro ao escanear etapa do funil: %w", err)
		}
		countsByStep[step] = users
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(countsByStep) == 0 {
		return []domain.FunnelStep{}, nil
	}

	steps := make([]domain.FunnelStep, 0, len(funnelStepOrder))
	for _, label := range funnelStepOrder {
		steps = append(steps, domain.FunnelStep{
			Label: label,
			Count: countsByStep[label],
		})
	}

	return steps, nil
}
