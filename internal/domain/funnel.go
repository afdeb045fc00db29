package domain

// FunnelStep é uma etapa nomeada do funil com contagem de entidades distintas
type FunnelStep struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FunnelStepRate é uma etapa com a taxa de conversão relativa à primeira
// etapa do funil
type FunnelStepRate struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// FunnelSnapshot é o funil calculado de uma janela. As contagens são
// confiadas como vieram do warehouse: o funil não reordena nem corta etapas
// fora de ordem (ruído de medição é esperado).
type FunnelSnapshot struct {
	Steps []FunnelStepRate `json:"steps"`
}

// Rótulos das etapas do funil de conversão padrão
const (
	FunnelStepVisitors      = "visitors"
	FunnelStepViewItem      = "view_item"
	FunnelStepAddToCart     = "add_to_cart"
	FunnelStepBeginCheckout = "begin_checkout"
	FunnelStepPurchase      = "purchase"
)
