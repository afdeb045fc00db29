package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commerce-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

const accountsTable = "accounts a"

// AccountRepository dá acesso ao cadastro de contas de clientes
type AccountRepository interface {
	ListAccounts(statuses []domain.AccountStatus) ([]*domain.Account, error)
	GetAccountByExternalID(externalID string) (*domain.Account, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts(statuses []domain.AccountStatus) ([]*domain.Account, error) {
	builder := squirrel.
		Select("a.id, a.external_id, a.name, a.status, a.webhook_url, a.default_monthly_target, a.created_at, a.updated_at").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"a.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetAccountByExternalID(externalID string) (*domain.Account, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_id, a.name, a.status, a.webhook_url, a.default_monthly_target, a.created_at, a.updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"a.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.Account{}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&account.WebhookURL,
		&account.DefaultMonthlyTarget,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func scanAccount(rows *sql.Rows) (*domain.Account, error) {
	account := &domain.Account{}

	err := rows.Scan(
		&account.ID,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&account.WebhookURL,
		&account.DefaultMonthlyTarget,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
