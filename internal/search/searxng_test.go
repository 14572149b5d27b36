package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearxNGClientSearch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"format":   q.Get("format"),
			"q":        q.Get("q"),
			"engines":  q.Get("engines"),
			"pageno":   q.Get("pageno"),
			"language": q.Get("language"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": "site:lwn.net AI",
			"results": [
				{"url": "https://lwn.net/Articles/1/", "title": "One", "content": "c1", "engine": "bing news", "publishedDate": "2025-01-01T00:00:00"},
				{"title": "sem url"}
			],
			"suggestions": ["lwn kernel"]
		}`))
	}))
	defer server.Close()

	client := NewSearxNGClient(server.URL+"/", 0)
	resp, err := client.Search(context.Background(), "site:lwn.net AI", Options{
		Engines:  []string{"bing news"},
		PageNo:   1,
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"format":   "json",
		"q":        "site:lwn.net AI",
		"engines":  "bing news",
		"pageno":   "1",
		"language": "en",
	}, gotQuery)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "https://lwn.net/Articles/1/", resp.Results[0].URL)
	assert.Equal(t, "One", resp.Results[0].Title)
	assert.Equal(t, "2025-01-01T00:00:00", resp.Results[0].PublishedDate)
	assert.False(t, resp.Results[1].HasURL())
	assert.Equal(t, []string{"lwn kernel"}, resp.Suggestions)
}

func TestSearxNGClientErrors(t *testing.T) {
	t.Run("status diferente de 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewSearxNGClient(server.URL, 0).Search(context.Background(), "x", Options{})
		assert.True(t, errors.Is(err, ErrUpstreamStatus))
	})

	t.Run("corpo inválido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>captcha</html>"))
		}))
		defer server.Close()

		_, err := NewSearxNGClient(server.URL, 0).Search(context.Background(), "x", Options{})
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("sem URL configurada", func(t *testing.T) {
		_, err := NewSearxNGClient("", 0).Search(context.Background(), "x", Options{})
		assert.ErrorIs(t, err, ErrBackendNotConfigured)
	})
}

func TestParseSiteQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SiteQuery
	}{
		{
			name:     "domínio com tópico",
			input:    "site:techcrunch.com machine learning",
			expected: SiteQuery{Host: "techcrunch.com", Terms: "machine learning"},
		},
		{
			name:     "subreddit",
			input:    "site:reddit.com/r/LocalLLaMA",
			expected: SiteQuery{Host: "reddit.com", Path: "/r/LocalLLaMA"},
		},
		{
			name:     "sem operador",
			input:    "open source",
			expected: SiteQuery{Terms: "open source"},
		},
		{
			name:     "host em maiúsculas",
			input:    "site:News.YCombinator.com AI",
			expected: SiteQuery{Host: "news.ycombinator.com", Terms: "AI"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSiteQuery(tt.input))
		})
	}
}

func TestSearxNGClientPing(t *testing.T) {
	healthy := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewSearxNGClient(server.URL, 0)
	require.NoError(t, client.Ping(context.Background()))

	healthy = false
	err := client.Ping(context.Background())
	assert.True(t, errors.Is(err, ErrUpstreamStatus))

	assert.ErrorIs(t, NewSearxNGClient("", 0).Ping(context.Background()), ErrBackendNotConfigured)
}
