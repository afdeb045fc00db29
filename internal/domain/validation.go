package domain

// ValidationStatus é o resultado tri-estado da checagem de qualidade de
// dados. Warning e Error anexam uma nota ao relatório mas nunca abortam a
// geração; apenas condições fatais (data malformada, warehouse fora do ar)
// sobem como erro de verdade.
type ValidationStatus string

const (
	ValidationOK      ValidationStatus = "ok"
	ValidationWarning ValidationStatus = "warning"
	ValidationError   ValidationStatus = "error"
)

// ValidationResult é o status da checagem mais a mensagem explicativa
type ValidationResult struct {
	Status  ValidationStatus `json:"status"`
	Message string           `json:"message"`
}

// Degraded indica se o resultado deve gerar nota no relatório
func (v ValidationResult) Degraded() bool {
	return v.Status == ValidationWarning || v.Status == ValidationError
}
