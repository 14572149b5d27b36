package llm

import "context"

type fakeModel struct {
	baseModel
	output string
}

func newFakeModel(provider, name string) *fakeModel {
	return &fakeModel{baseModel: baseModel{provider: provider, model: name, temperature: 1}}
}

func (f *fakeModel) Generate(context.Context, string) (string, error) { return f.output, nil }

type staticRegistry struct {
	inv Inventory
	err error
}

func (s staticRegistry) AvailableChatModelProviders(context.Context) (Inventory, error) {
	return s.inv, s.err
}

func entriesOf(provider string, names ...string) []ModelEntry {
	out := make([]ModelEntry, 0, len(names))
	for _, n := range names {
		out = append(out, ModelEntry{Name: n, Model: newFakeModel(provider, n)})
	}
	return out
}

type customConfig struct {
	key, url, model string
}

func (c customConfig) GetCustomOpenAIAPIKey() string    { return c.key }
func (c customConfig) GetCustomOpenAIAPIURL() string    { return c.url }
func (c customConfig) GetCustomOpenAIModelName() string { return c.model }
