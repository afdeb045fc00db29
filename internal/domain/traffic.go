package domain

// TrafficCategory é uma das oito categorias fixas de origem de tráfego.
// A ordem das regras de classificação é semântica: a primeira que casar
// vence, e Other é o balde residual que garante exaustividade.
type TrafficCategory string

const (
	TrafficDirect        TrafficCategory = "Direct"
	TrafficOrganicSearch TrafficCategory = "Organic Search"
	TrafficPaidAds       TrafficCategory = "Paid Ads"
	TrafficMemberCRM     TrafficCategory = "Member/CRM"
	TrafficAIReferral    TrafficCategory = "AI Referral"
	TrafficSocial        TrafficCategory = "Social"
	TrafficReferralLink  TrafficCategory = "Referral Link"
	TrafficOther         TrafficCategory = "Other"
)

// TrafficCategories lista as categorias na ordem de precedência das regras
var TrafficCategories = []TrafficCategory{
	TrafficDirect,
	TrafficOrganicSearch,
	TrafficPaidAds,
	TrafficMemberCRM,
	TrafficAIReferral,
	TrafficSocial,
	TrafficReferralLink,
	TrafficOther,
}

// TrafficCategoryMetrics é o agregado de uma categoria em uma janela
type TrafficCategoryMetrics struct {
	Category    TrafficCategory `json:"category"`
	Sessions    int             `json:"sessions"`
	Conversions int             `json:"conversions"`
	Revenue     float64         `json:"revenue"`
	CVR         float64         `json:"cvr"`
	AOV         float64         `json:"aov"`
}
