package generating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

func testParams(start, end time.Time) Params {
	return Params{
		StartDate: start,
		EndDate:   end,
		Seed:      42,
	}
}

func TestService_Generate_UmRegistroPorDataECanal(t *testing.T) {
	service := NewService()

	// 7 dias x 5 canais, com as duas pontas do intervalo incluídas
	records, err := service.Generate(testParams(
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC),
	))
	require.NoError(t, err)
	assert.Len(t, records, 35)

	type pair struct {
		date    string
		channel string
	}
	seen := make(map[pair]int)
	for _, record := range records {
		seen[pair{record.Date.Format(time.DateOnly), record.Channel}]++
	}

	assert.Len(t, seen, 35)
	assert.Equal(t, 1, seen[pair{"2024-09-01", "Google Ads"}])
	assert.Equal(t, 1, seen[pair{"2024-09-07", "Direct"}])
}

func TestService_Generate_DiaUnico(t *testing.T) {
	service := NewService()

	day := time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC)
	records, err := service.Generate(testParams(day, day))
	require.NoError(t, err)
	assert.Len(t, records, len(domain.DefaultChannels()))
}

func TestService_Generate_IntervaloInvertido(t *testing.T) {
	service := NewService()

	_, err := service.Generate(testParams(
		time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	))
	assert.Error(t, err)
}

func TestService_Generate_InvariantesDasMetricas(t *testing.T) {
	service := NewService()

	records, err := service.Generate(testParams(
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC),
	))
	require.NoError(t, err)

	for _, record := range records {
		assert.GreaterOrEqual(t, record.Sessions, 0)
		assert.GreaterOrEqual(t, record.Conversions, 0)
		assert.LessOrEqual(t, record.Conversions, record.Sessions,
			"conversões não podem exceder sessões em %s/%s", record.Date.Format(time.DateOnly), record.Channel)
		assert.GreaterOrEqual(t, record.Spend, 0.0)
		assert.GreaterOrEqual(t, record.Revenue, 0.0)

		if record.Channel == "Direct" {
			assert.Equal(t, 0.0, record.Spend, "canal orgânico não tem gasto")
		}
	}
}

func TestService_Generate_CanalDesconhecidoUsaPerfilDireto(t *testing.T) {
	service := NewService()

	// Canais fora da tabela de perfis caem no perfil do Direct, cuja média
	// de gasto é zero
	records, err := service.Generate(Params{
		StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
		Channels:  []string{"Parceria Nova"},
		Seed:      42,
	})
	require.NoError(t, err)
	require.Len(t, records, 30)

	for _, record := range records {
		assert.Equal(t, "Parceria Nova", record.Channel)
		assert.Equal(t, 0.0, record.Spend)
		assert.Greater(t, record.Sessions, 0)
		assert.LessOrEqual(t, record.Conversions, record.Sessions)
	}
}

func TestService_Generate_ListaDeCanaisCustomizada(t *testing.T) {
	service := NewService()

	records, err := service.Generate(Params{
		StartDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC),
		Channels:  []string{"Google Ads", "Email"},
		Seed:      42,
	})
	require.NoError(t, err)
	assert.Len(t, records, 14)

	for _, record := range records {
		assert.Contains(t, []string{"Google Ads", "Email"}, record.Channel)
	}
}

func TestService_Generate_ReproduzivelComMesmaSemente(t *testing.T) {
	service := NewService()

	params := testParams(
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
	)

	first, err := service.Generate(params)
	require.NoError(t, err)

	second, err := service.Generate(params)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i])
	}
}

func TestService_Generate_SementesDiferentesDivergem(t *testing.T) {
	service := NewService()

	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)

	first, err := service.Generate(Params{StartDate: start, EndDate: end, Seed: 42})
	require.NoError(t, err)

	second, err := service.Generate(Params{StartDate: start, EndDate: end, Seed: 43})
	require.NoError(t, err)

	different := false
	for i := range first {
		if first[i].Sessions != second[i].Sessions {
			different = true
			break
		}
	}
	assert.True(t, different, "sementes diferentes devem produzir datasets diferentes")
}

func TestService_Generate_FimDeSemanaReduzSessoes(t *testing.T) {
	service := NewService()

	// Setembro a novembro de 2024 dá amostra suficiente para a média
	// de fim de semana ficar visivelmente abaixo da média dos dias úteis
	records, err := service.Generate(testParams(
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC),
	))
	require.NoError(t, err)

	var weekdaySessions, weekendSessions int
	var weekdayCount, weekendCount int
	for _, record := range records {
		switch record.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSessions += record.Sessions
			weekendCount++
		default:
			weekdaySessions += record.Sessions
			weekdayCount++
		}
	}

	weekdayAvg := float64(weekdaySessions) / float64(weekdayCount)
	weekendAvg := float64(weekendSessions) / float64(weekendCount)

	assert.Less(t, weekendAvg, weekdayAvg*0.85,
		"média de sessões de fim de semana deveria refletir o fator 0.7")
}

func TestWeekdayFactor(t *testing.T) {
	tests := []struct {
		date   time.Time
		factor float64
	}{
		{time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), 1.0},  // segunda
		{time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC), 1.0},  // sexta
		{time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC), 0.7},  // sábado
		{time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), 0.7},  // domingo
	}

	for _, tt := range tests {
		assert.Equal(t, tt.factor, weekdayFactor(tt.date), tt.date.Weekday().String())
	}
}

func TestSummarize(t *testing.T) {
	records := []*domain.DailyChannelRecord{
		{
			Date:        time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			Channel:     "Google Ads",
			Sessions:    1500,
			Conversions: 75,
			Spend:       1000.00,
			Revenue:     3000.00,
		},
		{
			Date:        time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			Channel:     "Direct",
			Sessions:    2000,
			Conversions: 60,
			Spend:       0,
			Revenue:     1500.00,
		},
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, "2024-09-01", summary.StartDate)
	assert.Equal(t, "2024-09-02", summary.EndDate)
	assert.Equal(t, 2, summary.Channels)
	assert.Equal(t, int64(3500), summary.TotalSessions)
	assert.Equal(t, int64(135), summary.TotalConversions)
	assert.Equal(t, 4500.00, summary.TotalRevenue)
	assert.Equal(t, 1000.00, summary.TotalSpend)
	assert.Equal(t, 4.5, summary.ROAS)
}

func TestSummarize_Vazio(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Records)
	assert.Equal(t, 0.0, summary.ROAS)
}
