package domain

// ChannelProfile agrupa os parâmetros estáticos de simulação de um canal.
// Adicionar um canal é uma mudança de dados: basta incluir uma entrada na
// tabela abaixo.
type ChannelProfile struct {
	AvgSessions             float64
	AvgConversionRate       float64
	AvgSpend                float64
	AvgRevenuePerConversion float64
}

// DefaultChannel é o canal usado como fallback para nomes desconhecidos.
const DefaultChannel = "Direct"

var channelProfiles = map[string]ChannelProfile{
	"Google Ads": {
		AvgSessions:             1500,
		AvgConversionRate:       0.05,
		AvgSpend:                3000,
		AvgRevenuePerConversion: 150,
	},
	"Facebook Ads": {
		AvgSessions:             1200,
		AvgConversionRate:       0.04,
		AvgSpend:                2500,
		AvgRevenuePerConversion: 120,
	},
	"LinkedIn": {
		AvgSessions:             400,
		AvgConversionRate:       0.06,
		AvgSpend:                1500,
		AvgRevenuePerConversion: 200,
	},
	"Email": {
		AvgSessions:             800,
		AvgConversionRate:       0.08,
		AvgSpend:                500,
		AvgRevenuePerConversion: 100,
	},
	DefaultChannel: {
		AvgSessions:             2000,
		AvgConversionRate:       0.03,
		AvgSpend:                0,
		AvgRevenuePerConversion: 80,
	},
}

// DefaultChannels retorna o conjunto fixo de canais na ordem usada pelo
// gerador.
func DefaultChannels() []string {
	return []string{"Google Ads", "Facebook Ads", "LinkedIn", "Email", DefaultChannel}
}

// ProfileFor retorna o perfil do canal informado. Canais desconhecidos caem
// no perfil do canal Direct em vez de falhar.
func ProfileFor(channel string) ChannelProfile {
	if profile, ok := channelProfiles[channel]; ok {
		return profile
	}
	return channelProfiles[DefaultChannel]
}
