package llm

import (
	"context"
	"net/http"
	"strings"
)

// TitleTemperature é a temperatura usada na geração de títulos
const TitleTemperature = 0.3

// Preference é a ordem de preferência declarada como dados:
// provedores na ordem em que são tentados e trechos de nome de modelo
// preferidos dentro de cada provedor.
type Preference struct {
	Providers  []string
	ModelHints []string
}

// DefaultPreference prioriza modelos menores e mais rápidos
var DefaultPreference = Preference{
	Providers:  []string{ProviderOpenAI, ProviderGemini, ProviderGroq, ProviderAnthropic},
	ModelHints: []string{"gpt-3.5-turbo", "gpt-4o-mini", "gemini-1.5-flash", "claude-3-haiku"},
}

// Selection é o modelo escolhido
type Selection struct {
	Provider string
	Model    string
	Handle   ChatModel
}

// Select percorre os provedores em ordem. No primeiro provedor presente com
// pelo menos um modelo, usa o primeiro modelo que contém algum dos hints ou,
// se nenhum contém, o primeiro listado.
func (p Preference) Select(inv Inventory) (Selection, bool) {
	for _, provider := range p.Providers {
		models := inv[provider]
		if len(models) == 0 {
			continue
		}

		chosen := models[0]
		for _, m := range models {
			if p.matchesHint(m.Name) {
				chosen = m
				break
			}
		}

		if chosen.Model == nil {
			continue
		}
		return Selection{Provider: provider, Model: chosen.Name, Handle: chosen.Model}, true
	}
	return Selection{}, false
}

func (p Preference) matchesHint(name string) bool {
	for _, hint := range p.ModelHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// CustomEndpoint expõe a configuração do endpoint compatível com OpenAI
type CustomEndpoint interface {
	GetCustomOpenAIAPIKey() string
	GetCustomOpenAIAPIURL() string
	GetCustomOpenAIModelName() string
}

// Resolver decide qual handle usar: endpoint customizado quando completo,
// senão a preferência aplicada ao inventário do registro.
type Resolver struct {
	registry   ProviderRegistry
	custom     CustomEndpoint
	preference Preference
	httpClient *http.Client
}

// NewResolver cria um resolver. custom pode ser nil.
func NewResolver(registry ProviderRegistry, custom CustomEndpoint, preference Preference, httpClient *http.Client) *Resolver {
	return &Resolver{
		registry:   registry,
		custom:     custom,
		preference: preference,
		httpClient: httpClient,
	}
}

// Resolve retorna o handle escolhido ou ErrNoProvider
func (r *Resolver) Resolve(ctx context.Context) (Selection, error) {
	inv, err := r.registry.AvailableChatModelProviders(ctx)
	if err != nil {
		return Selection{}, err
	}

	if r.custom != nil {
		apiKey := r.custom.GetCustomOpenAIAPIKey()
		apiURL := r.custom.GetCustomOpenAIAPIURL()
		model := r.custom.GetCustomOpenAIModelName()
		if apiKey != "" && apiURL != "" && model != "" {
			handle := NewOpenAICompatModel(ProviderCustomOpenAI, apiURL, apiKey, model, r.httpClient)
			handle.SetTemperature(TitleTemperature)
			return Selection{Provider: ProviderCustomOpenAI, Model: model, Handle: handle}, nil
		}
	}

	if sel, ok := r.preference.Select(inv); ok {
		return sel, nil
	}
	return Selection{}, ErrNoProvider
}
