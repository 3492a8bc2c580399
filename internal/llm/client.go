// Package llm es el borde con el paso externo de personalización/extracción
// basado en un LLM. El motor de scoring nunca llama acá; solo la capa de
// aplicación lo usa para proponer nombres de display y embeddings de contexto.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// LLMClient define la interfaz hacia el servicio externo de generación.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPClient implementa LLMClient contra una API OpenAI-compatible.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	model      string
	embedModel string
	client     *http.Client
	logger     logger
}

// NewHTTPClient construye un cliente apuntando a chat completions y embeddings.
func NewHTTPClient(baseURL, apiKey, model, embedModel string, log logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if embedModel == "" {
		embedModel = "text-embedding-3-small"
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		embedModel: embedModel,
		client:     &http.Client{Timeout: 60 * time.Second},
		logger:     log,
	}
}

func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	respBody, err := c.post(ctx, "/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("llm api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("llm empty response")
	}
	return cr.Choices[0].Message.Content, nil
}

func (c *HTTPClient) Embed(ctx context.Context, text string) ([]float32, error) {
	reqBody := embedRequest{Model: c.embedModel, Input: text}

	respBody, err := c.post(ctx, "/embeddings", reqBody)
	if err != nil {
		return nil, err
	}

	var er embedResponse
	if err := json.Unmarshal(respBody, &er); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if er.Error != nil {
		return nil, fmt.Errorf("llm api error: %s", er.Error.Message)
	}
	if len(er.Data) == 0 || len(er.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("llm empty embedding")
	}
	return er.Data[0].Embedding, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) ([]byte, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Printf("llm error status %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("llm http error: status=%d", resp.StatusCode)
	}
	return respBody, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
