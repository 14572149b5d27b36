// Package search expõe o cliente de busca usado pelo discover.
//
// Dois backends implementam Searcher: a API JSON do SearxNG e uma collection
// de artigos no Typesense. Ambos entendem o operador "site:" nas queries.
package search

import (
	"context"
	"strings"

	"github.com/prefeitura-rio/app-discover/internal/models"
)

// Options são os parâmetros repassados ao agregador
type Options struct {
	Engines  []string
	PageNo   int
	Language string
}

// Response é o retorno de uma consulta
type Response struct {
	Results     []models.SearchResult
	Suggestions []string
}

// Searcher executa uma consulta e retorna os resultados na ordem do upstream
type Searcher interface {
	Search(ctx context.Context, query string, opts Options) (*Response, error)
}

// SearcherFunc adapta uma função para a interface Searcher
type SearcherFunc func(ctx context.Context, query string, opts Options) (*Response, error)

// Search implementa Searcher
func (f SearcherFunc) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	return f(ctx, query, opts)
}

// SiteQuery é uma query decomposta em restrição de site e termos livres
type SiteQuery struct {
	Host  string // ex: reddit.com
	Path  string // ex: /r/golang (vazio quando não há caminho)
	Terms string
}

// ParseSiteQuery separa o operador "site:" dos demais termos.
// "site:reddit.com/r/golang" -> {Host: reddit.com, Path: /r/golang}
// "site:lwn.net AI" -> {Host: lwn.net, Terms: AI}
func ParseSiteQuery(query string) SiteQuery {
	var sq SiteQuery
	terms := make([]string, 0)

	for _, field := range strings.Fields(query) {
		if rest, ok := strings.CutPrefix(field, "site:"); ok && sq.Host == "" && rest != "" {
			host, path, _ := strings.Cut(rest, "/")
			sq.Host = strings.ToLower(host)
			if path != "" {
				sq.Path = "/" + strings.TrimSuffix(path, "/")
			}
			continue
		}
		terms = append(terms, field)
	}

	sq.Terms = strings.Join(terms, " ")
	return sq
}
