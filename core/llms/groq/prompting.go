package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jinzhu/copier"
	"github.com/koscakluka/turngate-core/core/llms"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	url = "https://api.groq.com/openai/v1/chat/completions"

	defaultModel = "llama-3.1-8b-instant"
)

// Client is a thin chat-completions client. It serves two roles here: the
// deferred turn classifier's yes/no capability and general host response
// generation.
type Client struct {
	apiKey       string
	model        string
	systemPrompt string
}

type ClientOption func(*Client)

func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) { c.apiKey = apiKey }
}

func WithSystemPrompt(systemPrompt string) ClientOption {
	return func(c *Client) { c.systemPrompt = systemPrompt }
}

// NewClient creates a client. The API key falls back to the GROQ_API_KEY
// environment variable when not supplied explicitly.
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{model: defaultModel}
	for _, opt := range opts {
		opt(client)
	}

	if client.apiKey == "" {
		apiKey, ok := os.LookupEnv("GROQ_API_KEY")
		if !ok {
			return nil, fmt.Errorf("groq api key not found")
		}
		client.apiKey = apiKey
	}

	return client, nil
}

// Prompt sends a single-shot chat completion request. Tool calls requested
// by the model are returned in the response, never executed here.
func (c *Client) Prompt(ctx context.Context, prompt string, opts ...llms.PromptOption) (*llms.Response, error) {
	ctx, span := tracer.Start(ctx, "prompt llm")
	defer span.End()

	options := llms.PromptOptions{Instructions: c.systemPrompt}
	for _, opt := range opts {
		opt(&options)
	}

	messages := toMessages(options.Instructions, options.History)
	messages = append(messages, message{
		Role:    messageRoleUser,
		Content: prompt,
	})

	var tools []Tool
	if options.Tools != nil {
		if err := copier.Copy(&tools, options.Tools); err != nil {
			err = fmt.Errorf("error converting tools: %w", err)
			span.RecordError(err)
			return nil, err
		}
	}

	reqBody := requestBody{
		Model:    c.model,
		Messages: messages,
		Tools:    tools,
	}

	span.SetAttributes(attribute.String("request.model", c.model))
	respBody, err := c.send(ctx, reqBody)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error", err.Error()))
		return nil, err
	}

	if len(respBody.Choices) == 0 {
		err := fmt.Errorf("no choices in response")
		span.RecordError(err)
		return nil, err
	}

	choice := respBody.Choices[0].Message
	response := &llms.Response{Content: choice.Content}
	for _, call := range choice.ToolCalls {
		response.ToolCalls = append(response.ToolCalls, llms.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}

	return response, nil
}

func (c *Client) send(ctx context.Context, reqBody any) (*responseBody, error) {
	requestBodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// TODO: Retry depending on status
		return nil, fmt.Errorf("non-OK HTTP status: %s", resp.Status)
	}

	respBodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var respBody responseBody
	if err := json.Unmarshal(respBodyBytes, &respBody); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}

	return &respBody, nil
}

type requestBody struct {
	Model          string              `json:"model"`
	Messages       []message           `json:"messages"`
	Tools          []Tool              `json:"tools,omitempty"`
	ResponseFormat *ChatResponseFormat `json:"response_format,omitempty"`
}

type responseBody struct {
	Choices []struct {
		Message struct {
			Role         string     `json:"role,omitempty"`
			Content      string     `json:"content,omitempty"`
			ToolCalls    []toolCall `json:"tool_calls,omitempty"`
			FinishReason *string    `json:"finish_reason,omitempty"`
		} `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int     `json:"prompt_tokens"`
		CompletionTokens int     `json:"completion_tokens"`
		TotalTokens      int     `json:"total_tokens"`
		TotalTime        float64 `json:"total_time"`
	} `json:"usage"`
}
