package domain

import (
	"time"
)

// DashboardFilters delimita o período e o canal usados pelas consultas do
// dashboard. Channel vazio ou "All" significa todos os canais.
type DashboardFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Channel   string
}

// FilterAll é o valor do seletor de canal que desliga o filtro.
const FilterAll = "All"

// HasChannelFilter indica se os filtros restringem a um canal específico.
func (f *DashboardFilters) HasChannelFilter() bool {
	return f != nil && f.Channel != "" && f.Channel != FilterAll
}

// SummaryMetrics agrega os totais e as razões derivadas do período filtrado.
type SummaryMetrics struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalConversions int64   `json:"total_conversions"`
	TotalSessions    int64   `json:"total_sessions"`
	ROAS             float64 `json:"roas"`
	ROIPercent       float64 `json:"roi_percent"`
	CVRPercent       float64 `json:"cvr_percent"`
	Records          int     `json:"records"`
	Days             int     `json:"days"`
	Channels         int     `json:"channels"`
	NoData           bool    `json:"no_data"`
}

// DailyTrendPoint é um ponto da série diária de gasto/receita/conversões.
type DailyTrendPoint struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Conversions int64   `json:"conversions"`
}

// ChannelSummary agrega as métricas de um canal no período filtrado.
type ChannelSummary struct {
	Channel     string  `json:"channel"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Sessions    int64   `json:"sessions"`
	Conversions int64   `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

// Faixas de cor do gráfico de ROAS por canal.
const (
	RoasBandWarning = "warning" // ROAS < 1.0
	RoasBandCaution = "caution" // 1.0 <= ROAS < 2.0
	RoasBandSuccess = "success" // ROAS >= 2.0
)

// RoasTarget é a linha de referência fixa do gráfico de ROAS.
const RoasTarget = 2.0

// RoasEntry é uma barra do gráfico de ROAS por canal.
type RoasEntry struct {
	Channel string  `json:"channel"`
	ROAS    float64 `json:"roas"`
	Band    string  `json:"band"`
}

// RoasBand classifica um valor de ROAS na faixa de cor correspondente.
func RoasBand(roas float64) string {
	switch {
	case roas < 1.0:
		return RoasBandWarning
	case roas < RoasTarget:
		return RoasBandCaution
	default:
		return RoasBandSuccess
	}
}

// FunnelStage é uma etapa do funil sessões -> conversões.
type FunnelStage struct {
	Stage          string  `json:"stage"`
	Value          int64   `json:"value"`
	PercentOfFirst float64 `json:"percent_of_first"`
}

// SafeRatio divide a por b retornando 0 quando o denominador é 0, regra usada
// por todas as razões derivadas do dashboard.
func SafeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
