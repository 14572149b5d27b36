package title

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpertChainTruncatesContent(t *testing.T) {
	model := &fakeModel{output: "Some Title", temperature: 0.9}
	content := strings.Repeat("a", 1400) + strings.Repeat("é", 200)

	_, err := NewExpertChain().Generate(context.Background(), content, model)
	require.NoError(t, err)

	prompt := model.lastPrompt()
	assert.Contains(t, prompt, strings.Repeat("a", 1400)+strings.Repeat("é", 100)+"\n")
	assert.NotContains(t, prompt, strings.Repeat("é", 101))
	assert.True(t, strings.HasSuffix(prompt, "Generate only the title, nothing else:"))
}

func TestExpertChainShortContentUntouched(t *testing.T) {
	model := &fakeModel{output: "x"}
	content := "Scientists achieved net energy gain in a fusion experiment."

	_, err := NewExpertChain().Generate(context.Background(), content, model)
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt(), "Article Content:\n"+content+"\n")
}

func TestExpertChainSetsTemperature(t *testing.T) {
	model := &fakeModel{output: "x", temperature: 1}

	_, err := NewExpertChain().Generate(context.Background(), "content", model)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, model.Temperature(), 1e-9)
}

func TestExpertChainCleansOutput(t *testing.T) {
	tests := []struct {
		output   string
		expected string
	}{
		{"  Fusion Energy Breakthrough Explained  \n", "Fusion Energy Breakthrough Explained"},
		{"**Fusion Energy Breakthrough Explained**", "Fusion Energy Breakthrough Explained"},
		{"# Café Culture", "Café Culture"},
		{"2024. A Year in Review", "2024. A Year in Review"},
		{"Why <div> Soup Hurts Accessibility", "Why <div> Soup Hurts Accessibility"},
		{"C++ *pointers* and __init__ explained", "C++ *pointers* and __init__ explained"},
		{"Go 1.22: [range] over `int`", "Go 1.22: [range] over `int`"},
		{"- Not a list item", "- Not a list item"},
	}

	for _, tt := range tests {
		model := &fakeModel{output: tt.output}
		got, err := NewExpertChain().Generate(context.Background(), "c", model)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
		assert.True(t, utf8.ValidString(got))
	}
}

func TestExpertChainPropagatesError(t *testing.T) {
	model := &fakeModel{err: errors.New("boom")}

	_, err := NewExpertChain().Generate(context.Background(), "c", model)
	assert.EqualError(t, err, "boom")
}

func TestDescriptiveChainEmptyOnError(t *testing.T) {
	model := &fakeModel{err: errors.New("boom"), temperature: 0.7}

	got, err := NewDescriptiveChain().Generate(context.Background(), "c", model)
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.InDelta(t, 0.7, model.Temperature(), 1e-9)
}

func TestDescriptiveChainKeepsFullContent(t *testing.T) {
	model := &fakeModel{output: "Title"}
	content := strings.Repeat("b", 3000)

	got, err := NewDescriptiveChain().Generate(context.Background(), content, model)
	require.NoError(t, err)
	assert.Equal(t, "Title", got)
	assert.Contains(t, model.lastPrompt(), content)
	assert.True(t, strings.HasSuffix(model.lastPrompt(), "Title:"))
}

func TestChainExtractsHTMLContent(t *testing.T) {
	model := &fakeModel{output: "Title"}
	content := "<html><body><nav>menu</nav><article><p>Fusion reactor runs</p></article></body></html>"

	_, err := NewExpertChain().Generate(context.Background(), content, model)
	require.NoError(t, err)
	assert.Contains(t, model.lastPrompt(), "Article Content:\nFusion reactor runs\n")
	assert.NotContains(t, model.lastPrompt(), "<article>")
}
