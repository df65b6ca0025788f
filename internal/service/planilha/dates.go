package planilha

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearFirstPattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
	dayFirstPattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{2,4}$`)
)

// ParseDate converte o valor de data que chega do XLSX. Aceita o número
// serial do Excel (época 1899-12-30), AAAA/MM/DD e DD/MM/AA[AA], ignorando
// um sufixo de hora. Qualquer outro texto vira nil — a OP fica sem prazo em
// vez de abortar o processamento.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)
		t := epoch.Add(time.Duration(serial * 86400 * float64(time.Second)))
		return &t
	}

	datePart := strings.SplitN(value, " ", 2)[0]

	if yearFirstPattern.MatchString(datePart) {
		parts := strings.Split(datePart, "/")
		return makeDate(parts[0], parts[1], parts[2])
	}

	if dayFirstPattern.MatchString(datePart) {
		parts := strings.Split(datePart, "/")
		year := parts[2]
		if len(year) == 2 {
			year = "20" + year
		}
		return makeDate(year, parts[1], parts[0])
	}

	return nil
}

func makeDate(year, month, day string) *time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	return &t
}
