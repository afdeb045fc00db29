// Package calculating contém as funções puras de métricas derivadas.
// Nenhuma função arredonda: a precisão total é mantida até a emissão do
// registro final, onde pkg/utils faz o arredondamento de apresentação.
package calculating

// CVR calcula a taxa de conversão como fração (0.0150 = 1,5%)
func CVR(orders, sessions int) float64 {
	if sessions <= 0 {
		return 0.0
	}
	return float64(orders) / float64(sessions)
}

// AOV calcula o ticket médio
func AOV(revenue float64, orders int) float64 {
	if orders <= 0 {
		return 0.0
	}
	return revenue / float64(orders)
}

// ROAS calcula o retorno sobre gasto de anúncio. Sem gasto positivo o ROAS
// é indefinido e o retorno é nil — nunca zero, nunca erro.
func ROAS(revenue float64, adSpend *float64) *float64 {
	if adSpend == nil || *adSpend <= 0 {
		return nil
	}
	roas := revenue / *adSpend
	return &roas
}

// Change calcula a variação fracionária (atual - base) / base. Base zero é
// um caso definido: 1.0 quando o atual é positivo, 0.0 caso contrário.
func Change(current, baseline float64) float64 {
	if baseline == 0 {
		if current > 0 {
			return 1.0
		}
		return 0.0
	}
	return (current - baseline) / baseline
}

// AchievementRate calcula o percentual de atingimento da meta mensal
func AchievementRate(mtdRevenue, target float64) float64 {
	if target <= 0 {
		return 0.0
	}
	return mtdRevenue / target
}

// MTDProjection projeta a receita de fim de mês linearmente a partir do
// ritmo acumulado (dias corridos do mês calendário do relatório)
func MTDProjection(mtdRevenue float64, daysElapsed, daysInMonth int) float64 {
	if daysElapsed <= 0 {
		return 0.0
	}
	return mtdRevenue / float64(daysElapsed) * float64(daysInMonth)
}

// DailyAmountNeeded calcula quanto falta vender por dia para bater a meta.
// Meta já batida ou mês encerrado devolvem 0.
func DailyAmountNeeded(target, mtdRevenue float64, daysRemaining int) float64 {
	if daysRemaining <= 0 {
		return 0.0
	}

	remaining := target - mtdRevenue
	if remaining <= 0 {
		return 0.0
	}

	return remaining / float64(daysRemaining)
}
