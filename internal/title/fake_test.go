package title

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/llm"
)

type fakeModel struct {
	mu          sync.Mutex
	output      string
	err         error
	delay       time.Duration
	temperature float64
	calls       atomic.Int32
	prompts     []string
}

func (f *fakeModel) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	output, err := f.output, f.err
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return output, err
}

func (f *fakeModel) setOutput(output string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.output = output
}

func (f *fakeModel) SetTemperature(t float64) { f.temperature = t }
func (f *fakeModel) Temperature() float64     { return f.temperature }
func (f *fakeModel) Provider() string         { return "fake" }
func (f *fakeModel) ModelName() string        { return "fake-1" }

func (f *fakeModel) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type fakeResolver struct {
	model llm.ChatModel
	err   error
}

func (r fakeResolver) Resolve(context.Context) (llm.Selection, error) {
	if r.err != nil {
		return llm.Selection{}, r.err
	}
	return llm.Selection{Provider: "fake", Model: "fake-1", Handle: r.model}, nil
}
