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
	openAIBaseURL = "https://api.openai.com/v1"
	groqBaseURL   = "https://api.groq.com/openai/v1"
)

// OpenAICompatModel fala o formato /chat/completions (OpenAI, Groq e endpoints customizados)
type OpenAICompatModel struct {
	baseModel
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOpenAICompatModel cria um handle para um endpoint compatível com OpenAI
func NewOpenAICompatModel(provider, baseURL, apiKey, model string, httpClient *http.Client) *OpenAICompatModel {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OpenAICompatModel{
		baseModel:  baseModel{provider: provider, model: model, temperature: 0.7},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Generate envia o prompt como uma única mensagem de usuário
func (m *OpenAICompatModel) Generate(ctx context.Context, prompt string) (string, error) {
	payload := []byte(`{"messages":[{"role":"user","content":""}],"stream":false}`)
	payload, _ = sjson.SetBytes(payload, "model", m.model)
	payload, _ = sjson.SetBytes(payload, "messages.0.content", prompt)
	payload, _ = sjson.SetBytes(payload, "temperature", m.temperature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar %s: %w", m.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Provider: m.provider, Code: resp.StatusCode, Body: string(body)}
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return "", ErrEmptyResponse
	}
	return content.String(), nil
}
