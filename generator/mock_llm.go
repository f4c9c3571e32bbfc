package generator

import "context"

// MockLLM is a canned-reply client for local runs and tests. It records the
// last prompt it received.
type MockLLM struct {
	Reply      string
	Err        error
	LastPrompt Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return `{"overview":"A placeholder overview generated offline.","features":["Placeholder feature"]}`, nil
}
