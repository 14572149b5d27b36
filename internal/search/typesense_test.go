package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTypesenseParams(t *testing.T) {
	params := buildTypesenseParams(ParseSiteQuery("site:reddit.com/r/golang"), Options{PageNo: 1, Language: "en"})

	require.NotNil(t, params.Q)
	assert.Equal(t, "*", *params.Q)
	assert.Equal(t, "title,content", *params.QueryBy)
	assert.Equal(t, 1, *params.Page)
	require.NotNil(t, params.FilterBy)
	assert.Equal(t, "hostname:=reddit.com && path:/r/golang* && language:=en", *params.FilterBy)
}

func TestBuildTypesenseParamsSemFiltros(t *testing.T) {
	params := buildTypesenseParams(ParseSiteQuery("fusion energy"), Options{})

	assert.Equal(t, "fusion energy", *params.Q)
	assert.Equal(t, 1, *params.Page)
	assert.Nil(t, params.FilterBy)
}

func TestDocumentToResult(t *testing.T) {
	doc := map[string]interface{}{
		"url":            "https://arxiv.org/abs/1",
		"title":          "Paper",
		"content":        "abstract",
		"published_date": "2025-02-01",
		"hostname":       "arxiv.org",
		"views":          12.0,
	}

	r := documentToResult(doc)
	assert.Equal(t, "https://arxiv.org/abs/1", r.URL)
	assert.Equal(t, "Paper", r.Title)
	assert.Equal(t, "typesense", r.Engine)
	assert.Equal(t, "2025-02-01", r.PublishedDate)
	assert.Empty(t, r.Author)
}

func TestTypesenseSearcherNaoConfigurado(t *testing.T) {
	_, err := NewTypesenseSearcher(nil, "articles").Search(context.Background(), "x", Options{})
	assert.ErrorIs(t, err, ErrBackendNotConfigured)
}
