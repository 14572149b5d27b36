package index

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
)

// Store é o acesso à collection usado pela ingestão e pelo preenchimento de títulos
type Store interface {
	// Page retorna uma página de documentos e o total encontrado
	Page(ctx context.Context, page, perPage int) ([]map[string]interface{}, int, error)
	Upsert(ctx context.Context, doc map[string]interface{}) error
}

// TypesenseStore implementa Store sobre uma collection Typesense
type TypesenseStore struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseStore cria o store
func NewTypesenseStore(client *typesense.Client, collection string) *TypesenseStore {
	return &TypesenseStore{client: client, collection: collection}
}

// Page implementa Store
func (s *TypesenseStore) Page(ctx context.Context, page, perPage int) ([]map[string]interface{}, int, error) {
	params := &api.SearchCollectionParams{
		Q:       StringPtr("*"),
		QueryBy: StringPtr(FieldURL),
		Page:    IntPtr(page),
		PerPage: IntPtr(perPage),
		SortBy:  StringPtr(FieldIndexedAt + ":asc"),
	}

	result, err := s.client.Collection(s.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar documentos: %w", err)
	}

	total := 0
	if result.Found != nil {
		total = int(*result.Found)
	}

	docs := make([]map[string]interface{}, 0)
	if result.Hits == nil {
		return docs, total, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document != nil {
			docs = append(docs, *hit.Document)
		}
	}
	return docs, total, nil
}

// Upsert implementa Store
func (s *TypesenseStore) Upsert(ctx context.Context, doc map[string]interface{}) error {
	if _, err := s.client.Collection(s.collection).Documents().Upsert(ctx, doc, &api.DocumentIndexParameters{}); err != nil {
		return fmt.Errorf("erro ao gravar documento %v: %w", doc[FieldID], err)
	}
	return nil
}
