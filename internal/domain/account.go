package domain

import "time"

// AccountStatus é o status de uma conta de cliente
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account é uma conta de cliente atendida pelos relatórios
type Account struct {
	ID         string        `json:"id"`
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Status     AccountStatus `json:"status"`

	// WebhookURL é o destino do push diário; nulo desabilita a entrega
	WebhookURL *string `json:"webhook_url"`

	// DefaultMonthlyTarget é usado quando não há meta cadastrada para o mês
	DefaultMonthlyTarget *float64 `json:"default_monthly_target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RevenueTarget é a meta de receita de um mês (chave YYYY-MM)
type RevenueTarget struct {
	AccountID string    `json:"account_id"`
	Month     string    `json:"month"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
