package validating

import (
	"fmt"
	"time"

	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

// Validator executa a pré-checagem de qualidade de dados antes da geração
// de um relatório. O resultado é tri-estado: ok segue normal, warning e
// error viram nota de qualidade no relatório mas nunca abortam a geração.
type Validator interface {
	ValidateSessionsSync(accountID string, date time.Time) domain.ValidationResult
}

type validator struct {
	warehouse repository.WarehouseRepository
}

func NewValidator(warehouse repository.WarehouseRepository) Validator {
	return &validator{
		warehouse: warehouse,
	}
}

// ValidateSessionsSync verifica se as sessões de analytics da data já foram
// sincronizadas para a view diária. Linha ausente ou sessões nulas/zero
// indicam ingestão atrasada (warning); falha na consulta vira error com a
// causa na mensagem.
func (v *validator) ValidateSessionsSync(accountID string, date time.Time) domain.ValidationResult {
	facts, err := v.warehouse.GetDailyFacts(accountID, date)
	if err != nil {
		return domain.ValidationResult{
			Status:  domain.ValidationError,
			Message: fmt.Sprintf("falha na validação de sessões: %s", err),
		}
	}

	if facts == nil {
		return domain.ValidationResult{
			Status:  domain.ValidationWarning,
			Message: fmt.Sprintf("sessões ainda não sincronizadas (view diária sem linha para %s)", date.Format(time.DateOnly)),
		}
	}

	if facts.Sessions == nil || *facts.Sessions == 0 {
		return domain.ValidationResult{
			Status:  domain.ValidationWarning,
			Message: "sessões ainda não sincronizadas (valor nulo ou zero na view diária)",
		}
	}

	return domain.ValidationResult{
		Status:  domain.ValidationOK,
		Message: fmt.Sprintf("sessões sincronizadas: %d", *facts.Sessions),
	}
}
