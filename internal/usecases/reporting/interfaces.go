package reporting

import (
	"time"

	"github.com/vfg2006/commerce-report-api/internal/domain"
)

// Reporter define a interface de geração de relatórios de uma conta
type Reporter interface {
	// GenerateDailyReport gera o relatório do dia informado comparado com
	// a mesma data da semana anterior (offset literal de 7 dias)
	GenerateDailyReport(externalID string, date time.Time) (*domain.DailyReport, error)

	// GenerateWeeklyReport gera o relatório da janela de 7 dias que termina
	// em weekEnd, comparada com os 7 dias imediatamente anteriores
	GenerateWeeklyReport(externalID string, weekEnd time.Time) (*domain.WeeklyReport, error)
}
