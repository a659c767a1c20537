package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD. A string vazia é
// tratada como parâmetro ausente.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, fmt.Errorf("data obrigatória não informada")
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
