package utils

import "time"

const (
	DateLayout  = time.DateOnly
	MonthLayout = "2006-01"
)

// DateKey retorna a data no formato yyyy-mm-dd
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey retorna o mês no formato yyyy-mm
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}
