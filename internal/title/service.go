// Package title gera títulos de artigos com um modelo de linguagem e mantém
// um cache em memória por URL.
package title

import (
	"context"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-discover/internal/llm"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

var ErrGenerationFailed = errors.New("falha ao gerar título")

// ModelResolver escolhe o handle usado em cada geração
type ModelResolver interface {
	Resolve(ctx context.Context) (llm.Selection, error)
}

// Service junta cache, resolução de modelo e chain
type Service struct {
	resolver ModelResolver
	chain    *Chain
	cache    *Cache
	group    singleflight.Group
}

// NewService cria o serviço com a chain padrão do endpoint
func NewService(resolver ModelResolver, cache *Cache) *Service {
	if cache == nil {
		cache = NewCache(DefaultCacheMaxSize)
	}
	return &Service{
		resolver: resolver,
		chain:    NewExpertChain(),
		cache:    cache,
	}
}

// Cache retorna o cache usado pelo serviço
func (s *Service) Cache() *Cache {
	return s.cache
}

// Generate devolve o título da URL, do cache ou gerado pelo modelo.
// Misses simultâneos da mesma URL fazem uma única chamada ao modelo, que
// não é cancelada quando o chamador que a iniciou desiste.
// Retorna llm.ErrNoProvider quando nenhum modelo está disponível.
func (s *Service) Generate(ctx context.Context, url, content string) (string, error) {
	if cached, ok := s.cachedTitle(url); ok {
		return cached, nil
	}

	ch := s.group.DoChan(url, func() (interface{}, error) {
		if cached, ok := s.cachedTitle(url); ok {
			return cached, nil
		}
		return s.generate(context.WithoutCancel(ctx), url, content)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			log.WithField("url", url).Debug("geração de título compartilhada")
		}
		return res.Val.(string), nil
	}
}

// cachedTitle só considera hit um título não vazio
func (s *Service) cachedTitle(url string) (string, bool) {
	cached, ok := s.cache.Get(url)
	if !ok || cached == "" {
		return "", false
	}
	return cached, true
}

func (s *Service) generate(ctx context.Context, url, content string) (string, error) {
	ctx, span := otel.Tracer("title").Start(ctx, "title.generate")
	defer span.End()

	selection, err := s.resolver.Resolve(ctx)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, llm.ErrNoProvider) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	span.SetAttributes(
		attribute.String("llm.provider", selection.Provider),
		attribute.String("llm.model", selection.Model),
	)

	generated, err := s.chain.Generate(ctx, content, selection.Handle)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if generated != "" {
		s.cache.Set(url, generated)
	}

	log.WithFields(log.Fields{
		"provider": selection.Provider,
		"model":    selection.Model,
		"url":      url,
	}).Info("título gerado")

	return generated, nil
}

// Ready indica se algum modelo pode ser resolvido agora
func (s *Service) Ready(ctx context.Context) bool {
	_, err := s.resolver.Resolve(ctx)
	return err == nil
}
