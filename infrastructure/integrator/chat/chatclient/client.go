package chatclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// Card é a mensagem em formato de cartão aceita pelo webhook de chat
type Card struct {
	Cards []CardEntry `json:"cards"`
}

type CardEntry struct {
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

type Header struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type Section struct {
	Header  string   `json:"header,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget é um dos dois formatos de widget usados nos cartões
type Widget struct {
	KeyValue      *KeyValue      `json:"keyValue,omitempty"`
	TextParagraph *TextParagraph `json:"textParagraph,omitempty"`
}

type KeyValue struct {
	TopLabel    string `json:"topLabel,omitempty"`
	Content     string `json:"content"`
	BottomLabel string `json:"bottomLabel,omitempty"`
}

type TextParagraph struct {
	Text string `json:"text"`
}

type Client interface {
	PushCard(webhookURL string, card Card) error
}

type ChatClient struct {
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Chat.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ChatClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *ChatClient) PushCard(webhookURL string, card Card) error {
	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("erro ao serializar o cartão: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debug("Payload do cartão:\n", utils.PrettyJson(body))
	}

	req, err := http.NewRequest(http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar o cartão: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook respondeu %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}
