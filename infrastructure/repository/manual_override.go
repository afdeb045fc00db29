package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

const manualOverridesTable = "manual_overrides mo"

// OverrideRepository dá acesso aos valores informados manualmente pelo
// cliente, a segunda camada do fallback de resolução
type OverrideRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.ManualOverride, error)
	SaveOrUpdate(override *domain.ManualOverride) error
}

type overrideRepository struct {
	conn *postgres.Connection
}

func NewOverrideRepository(conn *postgres.Connection) OverrideRepository {
	return &overrideRepository{
		conn: conn,
	}
}

func (r *overrideRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.ManualOverride, error) {
	query, args, err := squirrel.
		Select("mo.account_id, mo.date, mo.sessions, mo.google_ads_spend, mo.meta_ads_spend, mo.created_at, mo.updated_at").
		From(manualOverridesTable).
		Where(squirrel.Eq{"mo.account_id": accountID, "mo.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	override := &domain.ManualOverride{}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&override.AccountID,
		&override.Date,
		&override.Sessions,
		&override.GoogleAdsSpend,
		&override.MetaAdsSpend,
		&override.CreatedAt,
		&override.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear override manual: %w", err)
	}

	return override, nil
}

func (r *overrideRepository) SaveOrUpdate(override *domain.ManualOverride) error {
	query := squirrel.StatementBuilder.
		Insert("manual_overrides").
		Columns("account_id", "date", "sessions", "google_ads_spend", "meta_ads_spend").
		Values(
			override.AccountID,
			override.Date.Format(time.DateOnly),
			override.Sessions,
			override.GoogleAdsSpend,
			override.MetaAdsSpend,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				sessions = EXCLUDED.sessions,
				google_ads_spend = EXCLUDED.google_ads_spend,
				meta_ads_spend = EXCLUDED.meta_ads_spend,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
