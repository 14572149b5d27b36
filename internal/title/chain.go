package title

import (
	"context"
	"strings"

	"github.com/prefeitura-rio/app-discover/internal/llm"
	"github.com/prefeitura-rio/app-discover/internal/utils"
	log "github.com/sirupsen/logrus"
)

// MaxContentRunes é quanto do conteúdo entra no prompt de título
const MaxContentRunes = 1500

const contentPlaceholder = "{content}"

// ExpertPrompt é o prompt usado pelo endpoint de títulos
const ExpertPrompt = `
You are an expert at creating concise, engaging article titles. Given the content of an article, generate a clear and descriptive title that accurately represents the main topic.

Requirements:
- The title should be no more than 10 words
- It should capture the essence of the article
- It should be engaging and informative
- Do not include quotes or special formatting
- Focus on the main topic or key finding

Article Content:
{content}

Generate only the title, nothing else:`

// DescriptivePrompt é a variante curta usada por rotinas internas
const DescriptivePrompt = `Generate a concise and descriptive title for the following article content. The title should be no more than 10 words and accurately reflect the main topic.

Article Content:
{content}

Title:`

// FailurePolicy define o que a chain faz quando o modelo falha
type FailurePolicy int

const (
	// FailOnError devolve o erro ao chamador
	FailOnError FailurePolicy = iota
	// EmptyOnError registra o erro e devolve título vazio
	EmptyOnError
)

// Chain monta o prompt, chama o modelo e limpa a saída
type Chain struct {
	prompt      string
	maxRunes    int
	temperature *float64
	policy      FailurePolicy
}

// NewExpertChain trunca o conteúdo em MaxContentRunes, força temperatura 0.3
// e propaga erros.
func NewExpertChain() *Chain {
	temperature := llm.TitleTemperature
	return &Chain{
		prompt:      ExpertPrompt,
		maxRunes:    MaxContentRunes,
		temperature: &temperature,
		policy:      FailOnError,
	}
}

// NewDescriptiveChain usa o conteúdo inteiro e devolve "" em caso de erro
func NewDescriptiveChain() *Chain {
	return &Chain{
		prompt:   DescriptivePrompt,
		maxRunes: -1,
		policy:   EmptyOnError,
	}
}

// Prompt retorna o prompt final para o conteúdo informado
func (c *Chain) Prompt(content string) string {
	if utils.LooksLikeHTML(content) {
		content = utils.HTMLToText(content)
	}
	content = utils.TruncateRunes(content, c.maxRunes)
	return strings.Replace(c.prompt, contentPlaceholder, content, 1)
}

// Generate gera o título. A temperatura configurada é aplicada no próprio
// handle, então o chamador enxerga a alteração.
func (c *Chain) Generate(ctx context.Context, content string, model llm.ChatModel) (string, error) {
	if c.temperature != nil {
		model.SetTemperature(*c.temperature)
	}

	output, err := model.Generate(ctx, c.Prompt(content))
	if err != nil {
		if c.policy == EmptyOnError {
			log.WithError(err).WithFields(log.Fields{
				"provider": model.Provider(),
				"model":    model.ModelName(),
			}).Error("erro ao gerar título")
			return "", nil
		}
		return "", err
	}

	return CleanOutput(output), nil
}

// CleanOutput trata a resposta do modelo como texto puro: NFC, pontas
// aparadas e, no máximo, um "**...**" ou "# " envolvendo o título todo.
func CleanOutput(output string) string {
	return utils.NormalizeTitle(output)
}
