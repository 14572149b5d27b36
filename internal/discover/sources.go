package discover

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var embeddedSources []byte

var ErrInvalidSources = errors.New("lista de fontes inválida")

// Sources são as listas candidatas do discover
type Sources struct {
	Domains    []string `yaml:"domains"`
	Topics     []string `yaml:"topics"`
	Subreddits []string `yaml:"subreddits"`
}

var defaultSources = mustParseSources(embeddedSources)

// DefaultSources retorna uma cópia das listas embutidas no binário
func DefaultSources() Sources {
	return defaultSources.clone()
}

// ParseSources lê as listas de um documento YAML
func ParseSources(data []byte) (Sources, error) {
	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sources{}, fmt.Errorf("%w: %v", ErrInvalidSources, err)
	}
	if err := s.Validate(); err != nil {
		return Sources{}, err
	}
	return s, nil
}

// Validate exige as três listas com pelo menos um item não vazio cada
func (s Sources) Validate() error {
	lists := []struct {
		name  string
		items []string
	}{
		{"domains", s.Domains},
		{"topics", s.Topics},
		{"subreddits", s.Subreddits},
	}
	for _, l := range lists {
		name, list := l.name, l.items
		if len(list) == 0 {
			return fmt.Errorf("%w: %s vazio", ErrInvalidSources, name)
		}
		for _, item := range list {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: item vazio em %s", ErrInvalidSources, name)
			}
		}
	}
	return nil
}

func mustParseSources(data []byte) Sources {
	s, err := ParseSources(data)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Sources) clone() Sources {
	return Sources{
		Domains:    append([]string(nil), s.Domains...),
		Topics:     append([]string(nil), s.Topics...),
		Subreddits: append([]string(nil), s.Subreddits...),
	}
}
