package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// CSVHeader define a ordem exata das colunas do arquivo intermediário
// trocado entre o gerador e o loader.
var CSVHeader = []string{"date", "source", "sessions", "conversions", "revenue", "spend"}

// DailyChannelRecord representa uma linha sintética de desempenho diário
// de um canal de marketing (uma linha por par data/canal).
type DailyChannelRecord struct {
	Date        time.Time `json:"date"`
	Channel     string    `json:"channel"`
	Sessions    int       `json:"sessions"`
	Conversions int       `json:"conversions"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
}

// PerformanceRow espelha o schema da tabela de desempenho diário no warehouse.
// A coluna `source` é exposta como `marketing_source` pela query do dashboard.
type PerformanceRow struct {
	Date            civil.Date `bigquery:"date" json:"date"`
	MarketingSource string     `bigquery:"marketing_source" json:"marketing_source"`
	Spend           float64    `bigquery:"spend" json:"spend"`
	Sessions        int64      `bigquery:"sessions" json:"sessions"`
	Conversions     int64      `bigquery:"conversions" json:"conversions"`
	Revenue         float64    `bigquery:"revenue" json:"revenue"`
}

// LoadReport resume o resultado de uma carga completa no warehouse.
type LoadReport struct {
	RunID     string    `json:"run_id"`
	TableRef  string    `json:"table_ref"`
	NumRows   uint64    `json:"num_rows"`
	NumBytes  int64     `json:"num_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
