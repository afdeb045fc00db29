package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

const revenueTargetsTable = "revenue_targets rt"

// TargetRepository dá acesso às metas mensais de receita (chave YYYY-MM)
type TargetRepository interface {
	GetByAccountIDAndMonth(accountID string, month string) (*domain.RevenueTarget, error)
	SaveOrUpdate(target *domain.RevenueTarget) error
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) GetByAccountIDAndMonth(accountID string, month string) (*domain.RevenueTarget, error) {
	query, args, err := squirrel.
		Select("rt.account_id, rt.month, rt.amount, rt.created_at, rt.updated_at").
		From(revenueTargetsTable).
		Where(squirrel.Eq{"rt.account_id": accountID, "rt.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	target := &domain.RevenueTarget{}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&target.AccountID,
		&target.Month,
		&target.Amount,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta mensal: %w", err)
	}

	return target, nil
}

func (r *targetRepository) SaveOrUpdate(target *domain.RevenueTarget) error {
	query := squirrel.StatementBuilder.
		Insert("revenue_targets").
		Columns("account_id", "month", "amount").
		Values(target.AccountID, target.Month, target.Amount).
		Suffix(`
			ON CONFLICT (account_id, month) DO UPDATE SET
				amount = EXCLUDED.amount,
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
