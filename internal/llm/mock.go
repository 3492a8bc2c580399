package llm

import "context"

// MockClient permite tests sin llamar al servicio externo real.
type MockClient struct {
	Response  string
	Embedding []float32
	Err       error
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}

func (m *MockClient) Embed(ctx context.Context, text string) ([]float32, error) {
	return m.Embedding, m.Err
}
