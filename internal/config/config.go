// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//
// ## Busca
//   - SEARCH_BACKEND: searxng ou typesense (default: searxng)
//   - SEARXNG_API_URL: URL base da instância SearxNG (ex: http://localhost:8888)
//   - SEARCH_TIMEOUT_SECONDS: Timeout por consulta (default: 30)
//   - DISCOVER_ENGINES: Engines usadas pelo discover, separadas por vírgula (default: bing news)
//   - DISCOVER_LANGUAGE: Idioma das consultas (default: en)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_COLLECTION: Collection de artigos (default: articles)
//
// ## LLM
//   - OPENAI_API_KEY / OPENAI_MODELS
//   - GROQ_API_KEY / GROQ_MODELS
//   - ANTHROPIC_API_KEY / ANTHROPIC_MODELS
//   - GEMINI_API_KEY / GEMINI_MODELS
//   - CUSTOM_OPENAI_API_KEY, CUSTOM_OPENAI_API_URL, CUSTOM_OPENAI_MODEL_NAME: endpoint
//     compatível com OpenAI que tem prioridade sobre os provedores acima
//   - LLM_TIMEOUT_SECONDS: Timeout por chamada ao modelo (default: 60)
//
// ## Títulos
//   - TITLE_CACHE_MAX_SIZE: Entradas máximas no cache de títulos (default: 1000)
//
// ## Observabilidade
//   - TRACING_ENABLED, TRACING_ENDPOINT
//   - LOG_LEVEL (default: info), LOG_TO_FILE (default: false), LOG_DIR (default: logs)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SearchBackendSearxNG   = "searxng"
	SearchBackendTypesense = "typesense"
)

type Config struct {
	ServerPort string

	// Search configuration
	SearchBackend  string
	SearxNGURL     string
	SearchTimeout  time.Duration
	SearchEngines  []string
	SearchLanguage string

	// Typesense configuration
	TypesenseHost       string
	TypesensePort       string
	TypesenseAPIKey     string
	TypesenseProtocol   string
	TypesenseCollection string

	// LLM configuration
	LLM LLMConfig

	// Title cache configuration
	TitleCacheMaxSize int

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string

	// Logging configuration
	LogLevel  string
	LogToFile bool
	LogDir    string
}

// LLMConfig contém as credenciais e modelos de cada provedor
type LLMConfig struct {
	OpenAIAPIKey string
	OpenAIModels []string

	GroqAPIKey string
	GroqModels []string

	AnthropicAPIKey string
	AnthropicModels []string

	GeminiAPIKey string
	GeminiModels []string

	CustomOpenAIAPIKey    string
	CustomOpenAIAPIURL    string
	CustomOpenAIModelName string

	Timeout time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		SearchBackend:  strings.ToLower(getEnv("SEARCH_BACKEND", SearchBackendSearxNG)),
		SearxNGURL:     getEnv("SEARXNG_API_URL", ""),
		SearchTimeout:  time.Duration(getEnvInt("SEARCH_TIMEOUT_SECONDS", 30)) * time.Second,
		SearchEngines:  getEnvList("DISCOVER_ENGINES", []string{"bing news"}),
		SearchLanguage: getEnv("DISCOVER_LANGUAGE", "en"),

		TypesenseHost:       getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", "articles"),

		LLM: LLMConfig{
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			OpenAIModels: getEnvList("OPENAI_MODELS", []string{"gpt-4o-mini", "gpt-4o", "gpt-3.5-turbo"}),

			GroqAPIKey: getEnv("GROQ_API_KEY", ""),
			GroqModels: getEnvList("GROQ_MODELS", []string{"llama-3.1-8b-instant", "llama-3.3-70b-versatile"}),

			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModels: getEnvList("ANTHROPIC_MODELS", []string{"claude-3-haiku-20240307", "claude-3-5-sonnet-20241022"}),

			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModels: getEnvList("GEMINI_MODELS", []string{"gemini-1.5-flash", "gemini-2.0-flash"}),

			CustomOpenAIAPIKey:    getEnv("CUSTOM_OPENAI_API_KEY", ""),
			CustomOpenAIAPIURL:    getEnv("CUSTOM_OPENAI_API_URL", ""),
			CustomOpenAIModelName: getEnv("CUSTOM_OPENAI_MODEL_NAME", ""),

			Timeout: time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		},

		TitleCacheMaxSize: getEnvInt("TITLE_CACHE_MAX_SIZE", 1000),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogToFile: getEnv("LOG_TO_FILE", "false") == "true",
		LogDir:    getEnv("LOG_DIR", "logs"),
	}
}

// GetCustomOpenAIAPIKey retorna a chave do endpoint customizado
func (c *LLMConfig) GetCustomOpenAIAPIKey() string {
	return strings.TrimSpace(c.CustomOpenAIAPIKey)
}

// GetCustomOpenAIAPIURL retorna a URL base do endpoint customizado
func (c *LLMConfig) GetCustomOpenAIAPIURL() string {
	return strings.TrimSpace(c.CustomOpenAIAPIURL)
}

// GetCustomOpenAIModelName retorna o modelo do endpoint customizado
func (c *LLMConfig) GetCustomOpenAIModelName() string {
	return strings.TrimSpace(c.CustomOpenAIModelName)
}

// HasCustomOpenAI indica se as três variáveis do endpoint customizado estão presentes
func (c *LLMConfig) HasCustomOpenAI() bool {
	return c.GetCustomOpenAIAPIKey() != "" && c.GetCustomOpenAIAPIURL() != "" && c.GetCustomOpenAIModelName() != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList lê uma lista separada por vírgulas, ignorando itens vazios
func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
