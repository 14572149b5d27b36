package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSources(t *testing.T) {
	s := DefaultSources()

	assert.Len(t, s.Domains, 48)
	assert.Len(t, s.Topics, 10)
	assert.Len(t, s.Subreddits, 14)
	assert.Contains(t, s.Domains, "lwn.net")
	assert.Contains(t, s.Topics, "open source")
	assert.Contains(t, s.Subreddits, "LocalLLaMA")
}

func TestDefaultSourcesReturnsCopy(t *testing.T) {
	s := DefaultSources()
	s.Domains[0] = "mutated.example"

	assert.NotEqual(t, "mutated.example", DefaultSources().Domains[0])
}

func TestParseSources(t *testing.T) {
	s, err := ParseSources([]byte("domains: [a.com]\ntopics: [AI]\nsubreddits: [golang]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.com"}, s.Domains)

	_, err = ParseSources([]byte("domains: [a.com]\n"))
	assert.ErrorIs(t, err, ErrInvalidSources)

	_, err = ParseSources([]byte("domains: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidSources)
}

func TestSourcesValidate(t *testing.T) {
	assert.NoError(t, DefaultSources().Validate())

	err := Sources{Domains: []string{"a.com"}, Subreddits: []string{"golang"}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSources)

	err = Sources{Domains: []string{"a.com"}, Topics: []string{" "}, Subreddits: []string{"golang"}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSources)
}
