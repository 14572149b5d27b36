package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/config"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// ModelEntry é um modelo listado por um provedor
type ModelEntry struct {
	Name  string
	Model ChatModel
}

// Inventory mapeia provedor -> modelos, na ordem em que foram configurados
type Inventory map[string][]ModelEntry

// ProviderRegistry lista os provedores de chat disponíveis
type ProviderRegistry interface {
	AvailableChatModelProviders(ctx context.Context) (Inventory, error)
}

// Registry monta o inventário a partir da configuração.
// Um provedor só aparece quando tem chave de API.
type Registry struct {
	cfg          *config.LLMConfig
	httpClient   *http.Client
	geminiClient *genai.Client
}

// NewRegistry cria o registro. Falha ao criar o cliente Gemini apenas
// remove o provedor do inventário.
func NewRegistry(ctx context.Context, cfg *config.LLMConfig) *Registry {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := &Registry{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}

	if cfg.GeminiAPIKey != "" {
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, r.httpClient)
		if err != nil {
			log.WithError(err).Warn("erro ao inicializar cliente Gemini, provedor desabilitado")
		} else {
			r.geminiClient = client
		}
	}

	return r
}

// HTTPClient retorna o cliente HTTP compartilhado pelos handles
func (r *Registry) HTTPClient() *http.Client {
	return r.httpClient
}

// AvailableChatModelProviders implementa ProviderRegistry.
// Cada chamada cria handles novos, então ajustar a temperatura de um handle
// não afeta outras requisições.
func (r *Registry) AvailableChatModelProviders(_ context.Context) (Inventory, error) {
	inv := make(Inventory)

	if r.cfg.OpenAIAPIKey != "" {
		inv[ProviderOpenAI] = r.entries(r.cfg.OpenAIModels, func(name string) ChatModel {
			return NewOpenAICompatModel(ProviderOpenAI, openAIBaseURL, r.cfg.OpenAIAPIKey, name, r.httpClient)
		})
	}

	if r.cfg.GroqAPIKey != "" {
		inv[ProviderGroq] = r.entries(r.cfg.GroqModels, func(name string) ChatModel {
			return NewOpenAICompatModel(ProviderGroq, groqBaseURL, r.cfg.GroqAPIKey, name, r.httpClient)
		})
	}

	if r.cfg.AnthropicAPIKey != "" {
		inv[ProviderAnthropic] = r.entries(r.cfg.AnthropicModels, func(name string) ChatModel {
			return NewAnthropicModel(anthropicBaseURL, r.cfg.AnthropicAPIKey, name, r.httpClient)
		})
	}

	if r.geminiClient != nil {
		inv[ProviderGemini] = r.entries(r.cfg.GeminiModels, func(name string) ChatModel {
			return NewGeminiModel(r.geminiClient, name)
		})
	}

	return inv, nil
}

func (r *Registry) entries(names []string, build func(name string) ChatModel) []ModelEntry {
	out := make([]ModelEntry, 0, len(names))
	for _, name := range names {
		out = append(out, ModelEntry{Name: name, Model: build(name)})
	}
	return out
}
