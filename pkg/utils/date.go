package utils

import "time"

// ParseDate interpreta uma data no formato 2006-01-02. String vazia retorna
// a data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// EndOfDay leva a data para o último instante do dia, para que o limite
// superior do período seja inclusivo.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// DayKey extrai a porção de data (2006-01-02) de um timestamp ISO gravado,
// sem interpretar fuso: os buckets diários casam por prefixo de string.
func DayKey(isoDate string) string {
	if len(isoDate) < len(time.DateOnly) {
		return isoDate
	}
	return isoDate[:len(time.DateOnly)]
}
