package funneling

import (
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// Compute calcula a taxa de cada etapa do funil relativa à primeira etapa
// (rate_i = count_i / count_0). As etapas chegam na ordem canônica do
// warehouse e são preservadas como estão: contagens fora de ordem são ruído
// de medição esperado e não são reordenadas nem cortadas.
//
// Quando a primeira etapa tem contagem zero, todas as taxas são zero, o que
// mantém a saída bem definida sem divisão por zero.
func Compute(steps []domain.FunnelStep) *domain.FunnelSnapshot {
	snapshot := &domain.FunnelSnapshot{
		Steps: make([]domain.FunnelStepRate, 0, len(steps)),
	}

	if len(steps) == 0 {
		return snapshot
	}

	base := steps[0].Count

	for _, step := range steps {
		rate := 0.0
		if base > 0 {
			rate = utils.RoundWithFourDecimalPlace(float64(step.Count) / float64(base))
		}

		snapshot.Steps = append(snapshot.Steps, domain.FunnelStepRate{
			Label: step.Label,
			Count: step.Count,
			Rate:  rate,
		})
	}

	return snapshot
}
