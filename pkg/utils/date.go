package utils

import (
	"strconv"
	"strings"
	"time"
)

const DefaultRangeDays = 7

// ParseRangeDays converte valores como "7d" ou "30" em quantidade de dias.
// Valores vazios, malformados ou não positivos retornam DefaultRangeDays.
func ParseRangeDays(rangeStr string) int {
	value := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(rangeStr)), "d")
	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 {
		return DefaultRangeDays
	}
	return days
}

// StartOfDayUTC trunca o instante para a meia-noite UTC do mesmo dia do calendário UTC
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// LookbackWindow retorna o intervalo [hoje-(days-1), hoje] em dias UTC
func LookbackWindow(now time.Time, days int) (time.Time, time.Time) {
	if days < 1 {
		days = 1
	}
	end := StartOfDayUTC(now)
	start := end.AddDate(0, 0, -(days - 1))
	return start, end
}
