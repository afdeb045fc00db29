package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	ErrAccountNotFound = errors.New("conta não encontrada")
	ErrNoWindowFacts   = errors.New("janela semanal sem dados no warehouse")
)
