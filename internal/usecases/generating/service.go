package generating

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/utils"
)

// Fator de sazonalidade aplicado às sessões de sábado e domingo.
const weekendFactor = 0.7

// Params delimita uma execução do gerador. Channels vazio usa o conjunto
// fixo de canais; Seed fixa torna a saída reproduzível byte a byte.
type Params struct {
	StartDate time.Time
	EndDate   time.Time
	Channels  []string
	Seed      int64
}

// Generator produz o dataset sintético de desempenho diário por canal.
type Generator interface {
	Generate(params Params) ([]*domain.DailyChannelRecord, error)
}

type Service struct{}

func NewService() Generator {
	return &Service{}
}

// Generate produz um registro por par (data, canal) para todas as datas do
// intervalo inclusivo, agrupados por data na ordem de geração.
func (s *Service) Generate(params Params) ([]*domain.DailyChannelRecord, error) {
	if params.EndDate.Before(params.StartDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	channels := params.Channels
	if len(channels) == 0 {
		channels = domain.DefaultChannels()
	}

	rng := rand.New(rand.NewSource(params.Seed))

	records := make([]*domain.DailyChannelRecord, 0)
	for date := params.StartDate; !date.After(params.EndDate); date = date.AddDate(0, 0, 1) {
		for _, channel := range channels {
			records = append(records, generateRecord(rng, date, channel))
		}
	}

	return records, nil
}

func generateRecord(rng *rand.Rand, date time.Time, channel string) *domain.DailyChannelRecord {
	profile := domain.ProfileFor(channel)

	// Sazonalidade de fim de semana sobre a média de sessões
	avgSessions := profile.AvgSessions * weekdayFactor(date)

	sessions := samplePoisson(rng, avgSessions)
	conversions := sampleBinomial(rng, sessions, profile.AvgConversionRate)

	// Canais orgânicos (média de gasto zero) não são sorteados
	spend := 0.0
	if profile.AvgSpend > 0 {
		spend = sampleNormal(rng, profile.AvgSpend, profile.AvgSpend*0.2)
	}

	revenuePerConversion := sampleNormal(rng, profile.AvgRevenuePerConversion, profile.AvgRevenuePerConversion*0.3)
	revenue := float64(conversions) * revenuePerConversion

	// Sorteios negativos são fixados em zero, simplificação herdada do
	// desenho original
	spend = math.Max(0, spend)
	revenue = math.Max(0, revenue)

	return &domain.DailyChannelRecord{
		Date:        date,
		Channel:     channel,
		Sessions:    sessions,
		Conversions: conversions,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
	}
}

func weekdayFactor(date time.Time) float64 {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return weekendFactor
	default:
		return 1.0
	}
}

// Summary resume uma execução do gerador para os logs do pipeline.
type Summary struct {
	Records          int
	StartDate        string
	EndDate          string
	Channels         int
	TotalSessions    int64
	TotalConversions int64
	TotalRevenue     float64
	TotalSpend       float64
	ROAS             float64
}

// Summarize calcula as estatísticas globais do dataset gerado.
func Summarize(records []*domain.DailyChannelRecord) *Summary {
	summary := &Summary{Records: len(records)}
	if len(records) == 0 {
		return summary
	}

	channels := make(map[string]struct{})
	minDate := records[0].Date
	maxDate := records[0].Date

	for _, record := range records {
		channels[record.Channel] = struct{}{}
		if record.Date.Before(minDate) {
			minDate = record.Date
		}
		if record.Date.After(maxDate) {
			maxDate = record.Date
		}

		summary.TotalSessions += int64(record.Sessions)
		summary.TotalConversions += int64(record.Conversions)
		summary.TotalRevenue += record.Revenue
		summary.TotalSpend += record.Spend
	}

	summary.StartDate = minDate.Format(time.DateOnly)
	summary.EndDate = maxDate.Format(time.DateOnly)
	summary.Channels = len(channels)
	summary.ROAS = utils.RoundWithTwoDecimalPlace(domain.SafeRatio(summary.TotalRevenue, summary.TotalSpend))
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)

	return summary
}
