package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiModel gera texto com a API Gemini
type GeminiModel struct {
	baseModel
	client *genai.Client
}

// NewGeminiClient cria o cliente Gemini compartilhado pelos handles.
// O httpClient define o timeout de cada chamada.
func NewGeminiClient(ctx context.Context, apiKey string, httpClient *http.Client) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
}

// NewGeminiModel cria um handle para um modelo Gemini
func NewGeminiModel(client *genai.Client, model string) *GeminiModel {
	return &GeminiModel{
		baseModel: baseModel{provider: ProviderGemini, model: model, temperature: 0.7},
		client:    client,
	}
}

// Generate envia o prompt como conteúdo do usuário
func (m *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m.client == nil {
		return "", fmt.Errorf("cliente Gemini não inicializado")
	}

	content := genai.NewContentFromText(prompt, genai.RoleUser)
	temperature := float32(m.temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model, []*genai.Content{content}, config)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar conteúdo: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	return resp.Text(), nil
}
