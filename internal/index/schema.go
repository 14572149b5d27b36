// Package index mantém a collection de artigos no Typesense usada pelo
// backend de busca alternativo: criação do schema, ingestão a partir do
// agregador e preenchimento de títulos faltantes.
package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
)

// SchemaVersion identifica o layout de campos abaixo
const SchemaVersion = "v1"

// Campos da collection de artigos
const (
	FieldID        = "id"
	FieldURL       = "url"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldHostname  = "hostname"
	FieldPath      = "path"
	FieldLanguage  = "language"
	FieldThumbnail = "thumbnail"
	FieldAuthor    = "author"
	FieldPublished = "published_date"
	FieldIndexedAt = "indexed_at"
)

// ArticlesSchema retorna o schema da collection de artigos
func ArticlesSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: FieldID, Type: "string", Optional: BoolPtr(true)},
			{Name: FieldURL, Type: "string", Facet: BoolPtr(false)},
			{Name: FieldTitle, Type: "string", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: FieldContent, Type: "string", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: FieldHostname, Type: "string", Facet: BoolPtr(true)},
			{Name: FieldPath, Type: "string", Facet: BoolPtr(false)},
			{Name: FieldLanguage, Type: "string", Facet: BoolPtr(true)},
			{Name: FieldThumbnail, Type: "string", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: FieldAuthor, Type: "string", Facet: BoolPtr(true), Optional: BoolPtr(true)},
			{Name: FieldPublished, Type: "string", Facet: BoolPtr(false), Optional: BoolPtr(true)},
			{Name: FieldIndexedAt, Type: "int64", Facet: BoolPtr(false)},
		},
		DefaultSortingField: StringPtr(FieldIndexedAt),
	}
}

// EnsureCollection cria a collection se ela ainda não existe.
// Retorna true quando a collection foi criada agora.
func EnsureCollection(ctx context.Context, client *typesense.Client, name string) (bool, error) {
	_, err := client.Collection(name).Retrieve(ctx)
	if err == nil {
		return false, nil
	}

	if !isNotFound(err) {
		return false, fmt.Errorf("erro ao consultar collection %s: %w", name, err)
	}

	if _, err := client.Collections().Create(ctx, ArticlesSchema(name)); err != nil {
		return false, fmt.Errorf("erro ao criar collection %s: %w", name, err)
	}
	return true, nil
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "404") || strings.Contains(err.Error(), "Not found")
}

// StringPtr retorna um ponteiro para string
func StringPtr(s string) *string {
	return &s
}

// IntPtr retorna um ponteiro para int
func IntPtr(i int) *int {
	return &i
}

// BoolPtr retorna um ponteiro para bool
func BoolPtr(b bool) *bool {
	return &b
}
