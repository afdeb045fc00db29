package chat

import (
	"github.com/vfg2006/commerce-report-api/infrastructure/integrator/chat/chatclient"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

// ChatIntegrator entrega relatórios prontos como cartões no webhook da
// conta. A montagem do cartão respeita a semântica null-vs-zero do
// relatório: valor ausente vira travessão, nunca zero.
type ChatIntegrator interface {
	SendDailyReport(webhookURL string, report *domain.DailyReport) error
	SendWeeklyReport(webhookURL string, report *domain.WeeklyReport) error
}

type ChatService struct {
	cfg    *config.Config
	Client chatclient.Client
}

func New(cfg *config.Config, client chatclient.Client) ChatIntegrator {
	return &ChatService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ChatService) SendDailyReport(webhookURL string, report *domain.DailyReport) error {
	card := chatclient.Card{
		Cards: []chatclient.CardEntry{
			{
				Header: chatclient.Header{
					Title:    "Resumo diário de vendas",
					Subtitle: report.ReportDate,
				},
				Sections: buildDailySections(report),
			},
		},
	}

	return s.Client.PushCard(webhookURL, card)
}

func (s *ChatService) SendWeeklyReport(webhookURL string, report *domain.WeeklyReport) error {
	card := chatclient.Card{
		Cards: []chatclient.CardEntry{
			{
				Header: chatclient.Header{
					Title:    "Resumo semanal de vendas",
					Subtitle: report.WeekStart + " a " + report.WeekEnd,
				},
				Sections: buildWeeklySections(report),
			},
		},
	}

	return s.Client.PushCard(webhookURL, card)
}

func buildDailySections(report *domain.DailyReport) []chatclient.Section {
	indicators := chatclient.Section{
		Header: "Indicadores do dia",
		Widgets: []chatclient.Widget{
			keyValue("Receita", trendIcon(report.RevenueChangeWoW)+" "+formatCurrency(report.Revenue),
				"vs. semana anterior "+formatPercent(report.RevenueChangeWoW)),
			keyValue("Pedidos", formatInt(report.Orders), ""),
			keyValue("Ticket médio", formatCurrency(report.AOV),
				"vs. semana anterior "+formatPercent(report.AOVChangeWoW)),
			keyValue("Taxa de conversão", trendIcon(report.CVRChangeWoW)+" "+formatFraction(report.CVR),
				"vs. semana anterior "+formatPercent(report.CVRChangeWoW)),
			keyValue("Sessões", formatInt(report.Sessions),
				"vs. semana anterior "+formatPercent(report.SessionsChangeWoW)),
		},
	}

	ads := chatclient.Section{
		Header: "Mídia paga",
		Widgets: []chatclient.Widget{
			keyValue("Investimento", formatOptionalCurrency(report.AdSpend), ""),
			keyValue("ROAS", formatOptionalRatio(report.ROAS), ""),
			keyValue("Google Ads", formatOptionalCurrency(report.GoogleAdsSpend), ""),
			keyValue("Meta Ads", formatOptionalCurrency(report.MetaAdsSpend), ""),
		},
	}

	monthly := chatclient.Section{
		Header: "Progresso do mês",
		Widgets: []chatclient.Widget{
			keyValue("Meta do mês", formatCurrency(report.MonthlyTargetRevenue), ""),
			keyValue("Acumulado", formatCurrency(report.MTDRevenue),
				"atingimento "+formatFraction(report.MTDAchievementRate)),
			keyValue("Projeção de fechamento", formatCurrency(report.MTDProjectedRevenue), ""),
			keyValue("Necessário por dia", formatCurrency(report.DailyAmountNeeded), ""),
		},
	}

	sections := []chatclient.Section{indicators, ads, monthly}

	if report.DataQualityNote != nil {
		sections = append(sections, noteSection(*report.DataQualityNote))
	}

	return sections
}

func buildWeeklySections(report *domain.WeeklyReport) []chatclient.Section {
	indicators := chatclient.Section{
		Header: "Indicadores da semana",
		Widgets: []chatclient.Widget{
			keyValue("Receita", formatCurrency(report.Revenue),
				"vs. semana anterior "+formatPercent(report.Changes[domain.MetricRevenue])),
			keyValue("Pedidos", formatInt(report.Orders),
				"vs. semana anterior "+formatPercent(report.Changes[domain.MetricOrders])),
			keyValue("Ticket médio", formatCurrency(report.AOV),
				"vs. semana anterior "+formatPercent(report.Changes[domain.MetricAOV])),
			keyValue("Taxa de conversão", formatFraction(report.CVR),
				"vs. semana anterior "+formatPercent(report.Changes[domain.MetricCVR])),
			keyValue("Sessões", formatInt(report.Sessions),
				"vs. semana anterior "+formatPercent(report.Changes[domain.MetricSessions])),
			keyValue("Investimento", formatOptionalCurrency(report.AdSpend), ""),
			keyValue("ROAS", formatOptionalRatio(report.ROAS), ""),
		},
	}

	traffic := chatclient.Section{
		Header:  "Origens de tráfego",
		Widgets: make([]chatclient.Widget, 0, len(report.TrafficBreakdown)),
	}
	for _, category := range report.TrafficBreakdown {
		traffic.Widgets = append(traffic.Widgets, keyValue(
			string(category.Category),
			formatCurrency(category.Revenue),
			formatInt(category.Sessions)+" sessões, conversão "+formatFraction(category.CVR),
		))
	}

	sections := []chatclient.Section{indicators}
	if len(traffic.Widgets) > 0 {
		sections = append(sections, traffic)
	}

	if report.Funnel != nil && len(report.Funnel.Steps) > 0 {
		funnel := chatclient.Section{
			Header:  "Funil de conversão",
			Widgets: make([]chatclient.Widget, 0, len(report.Funnel.Steps)),
		}
		for _, step := range report.Funnel.Steps {
			funnel.Widgets = append(funnel.Widgets, keyValue(
				step.Label,
				formatInt(step.Count),
				formatFraction(step.Rate)+" da primeira etapa",
			))
		}
		sections = append(sections, funnel)
	}

	if report.DataQualityNote != nil {
		sections = append(sections, noteSection(*report.DataQualityNote))
	}

	return sections
}

func keyValue(label, content, bottom string) chatclient.Widget {
	return chatclient.Widget{
		KeyValue: &chatclient.KeyValue{
			TopLabel:    label,
			Content:     content,
			BottomLabel: bottom,
		},
	}
}

func noteSection(note string) chatclient.Section {
	return chatclient.Section{
		Widgets: []chatclient.Widget{
			{
				TextParagraph: &chatclient.TextParagraph{
					Text: "<i>" + note + "</i>",
				},
			},
		},
	}
}
