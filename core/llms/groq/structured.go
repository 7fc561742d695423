package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/koscakluka/turngate-core/core/llms"
	"go.opentelemetry.io/otel/attribute"
)

// PromptWithStructure sends a single-shot request constrained to the JSON
// schema reflected from outputSchema and unmarshals the result into it.
// outputSchema must be a pointer to a struct.
func (c *Client) PromptWithStructure(ctx context.Context, prompt string, outputSchema any, opts ...llms.PromptOption) error {
	ctx, span := tracer.Start(ctx, "prompt llm structured")
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

	// TODO: Implement a custom reflector that only satisfies the subset of
	// jsonschema used by groq
	reflector := jsonschema.Reflector{DoNotReference: true}
	var (
		schema         *jsonschema.Schema
		outputTypeName string
	)
	if reflect.TypeOf(outputSchema).Kind() == reflect.Ptr {
		schema = reflector.ReflectFromType(reflect.TypeOf(outputSchema).Elem())
		outputTypeName = reflect.TypeOf(outputSchema).Elem().Name()
	} else {
		schema = reflector.Reflect(outputSchema)
		outputTypeName = reflect.TypeOf(outputSchema).Name()
	}

	reqBody := requestBody{
		Model:    c.model,
		Messages: messages,
		ResponseFormat: &ChatResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   outputTypeName,
				Schema: *schema,
				Strict: true,
			},
		},
	}

	span.SetAttributes(attribute.String("request.model", c.model))
	schemaString, _ := schema.MarshalJSON()
	span.SetAttributes(attribute.String("request.schema", string(schemaString)))

	respBody, err := c.send(ctx, reqBody)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error", err.Error()))
		return err
	}

	if len(respBody.Choices) == 0 {
		err := fmt.Errorf("no choices in response")
		span.RecordError(err)
		return err
	}

	content := respBody.Choices[0].Message.Content
	split := strings.Split(content, "```")
	if len(split) > 1 {
		content = split[1]
	}
	if err := json.Unmarshal([]byte(content), outputSchema); err != nil {
		err = fmt.Errorf("error unmarshalling response: %w", err)
		span.RecordError(err)
		span.SetAttributes(attribute.String("error", err.Error()))
		return err
	}

	return nil
}

type ChatResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

type JSONSchema struct {
	// Name is the name of the chat completion response format json
	// schema.
	//
	// it is used to further identify the schema in the response.
	Name string `json:"name"`
	// Description is the description of the chat completion
	// response format json schema.
	Description string `json:"description,omitempty"`
	// Schema is the schema of the chat completion response format
	// json schema.
	Schema jsonschema.Schema `json:"schema"`
	// Strict determines whether to enforce the schema upon the
	// generated content.
	Strict bool `json:"strict"`
}
