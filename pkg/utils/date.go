package utils

import "time"

// Yesterday retorna a data de ontem (T-1), truncada para meia-noite UTC
func Yesterday() time.Time {
	return Truncate(time.Now().UTC().AddDate(0, 0, -1))
}

// Truncate normaliza uma data para meia-noite
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastWeekSameDay retorna a data exatamente 7 dias antes. O offset é
// literal, sem alinhamento por semana ISO: é uma escolha fixa de design.
func LastWeekSameDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

// MonthStart retorna o primeiro dia do mês da data informada
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth retorna a quantidade de dias do mês da data informada
func DaysInMonth(t time.Time) int {
	firstOfNext := MonthStart(t).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// FormatMonth formata a data como chave de mês YYYY-MM
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}
