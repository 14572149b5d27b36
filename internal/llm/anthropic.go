package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	anthropicBaseURL   = "https://api.anthropic.com/v1"
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 256
)

// AnthropicModel usa a Messages API
type AnthropicModel struct {
	baseModel
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAnthropicModel cria um handle para um modelo Claude
func NewAnthropicModel(baseURL, apiKey, model string, httpClient *http.Client) *AnthropicModel {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &AnthropicModel{
		baseModel:  baseModel{provider: ProviderAnthropic, model: model, temperature: 0.7},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Generate envia o prompt e concatena os blocos de texto da resposta
func (m *AnthropicModel) Generate(ctx context.Context, prompt string) (string, error) {
	payload := []byte(`{"messages":[{"role":"user","content":""}]}`)
	payload, _ = sjson.SetBytes(payload, "model", m.model)
	payload, _ = sjson.SetBytes(payload, "max_tokens", anthropicMaxTokens)
	payload, _ = sjson.SetBytes(payload, "messages.0.content", prompt)
	payload, _ = sjson.SetBytes(payload, "temperature", m.temperature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", m.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar anthropic: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Provider: ProviderAnthropic, Code: resp.StatusCode, Body: string(body)}
	}

	var sb strings.Builder
	gjson.GetBytes(body, "content").ForEach(func(_, block gjson.Result) bool {
		if block.Get("type").String() == "text" {
			sb.WriteString(block.Get("text").String())
		}
		return true
	})

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
