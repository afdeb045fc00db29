package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API de relatórios
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidDateFormat   = "VAL_003" // Data fora do formato YYYY-MM-DD
	ErrInvalidPeriod       = "VAL_004" // Período inválido (início após fim)
	ErrRouteNotFound       = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado pela rota

	// Erros de domínio (RPT)
	ErrAccountNotFound  = "RPT_001" // Conta não encontrada
	ErrTargetNotFound   = "RPT_002" // Meta mensal não cadastrada
	ErrReportNotReady   = "RPT_003" // View diária ainda sem dados para a data
	ErrOverrideNotFound = "RPT_004" // Override manual não cadastrado para a data

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrWarehouseQuery    = "SRV_002" // Erro de consulta ao warehouse
	ErrDeliveryFailed    = "SRV_003" // Falha no push do relatório
	ErrDatabaseOperation = "SRV_004" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidDateFormat:   http.StatusBadRequest,
	ErrInvalidPeriod:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrTargetNotFound:      http.StatusNotFound,
	ErrReportNotReady:      http.StatusConflict,
	ErrOverrideNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrWarehouseQuery:      http.StatusBadGateway,
	ErrDeliveryFailed:      http.StatusBadGateway,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
