// Package llm contém os handles de modelo de chat, o registro de provedores
// disponíveis e a seleção do modelo usado na geração de títulos.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Nomes dos provedores conhecidos
const (
	ProviderOpenAI       = "openai"
	ProviderGroq         = "groq"
	ProviderAnthropic    = "anthropic"
	ProviderGemini       = "gemini"
	ProviderCustomOpenAI = "custom_openai"
)

var (
	ErrNoProvider    = errors.New("nenhum provedor de LLM disponível")
	ErrEmptyResponse = errors.New("modelo retornou resposta vazia")
)

// ChatModel é um handle para um modelo configurado capaz de completar texto.
// A temperatura é estado do handle: SetTemperature altera as chamadas seguintes.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	SetTemperature(temperature float64)
	Temperature() float64
	Provider() string
	ModelName() string
}

// StatusError representa uma resposta HTTP não-2xx de um provedor
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 300 {
		body = body[:300] + "..."
	}
	return fmt.Sprintf("%s retornou status %d: %s", e.Provider, e.Code, body)
}

// baseModel guarda os campos comuns aos handles
type baseModel struct {
	provider    string
	model       string
	temperature float64
}

func (b *baseModel) SetTemperature(temperature float64) { b.temperature = temperature }
func (b *baseModel) Temperature() float64               { return b.temperature }
func (b *baseModel) Provider() string                   { return b.provider }
func (b *baseModel) ModelName() string                  { return b.model }
