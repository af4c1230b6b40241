package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultChatModel   = openai.ChatModelGPT4oMini
	DefaultTemperature = 0.2
)

type openaiClient struct {
	openai      *openai.Client
	chatModel   openai.ChatModel
	temperature float64
	baseURL     string
}

type ClientOption func(*openaiClient)

func WithChatModel(model string) ClientOption {
	return func(c *openaiClient) {
		if model != "" {
			c.chatModel = openai.ChatModel(model)
		}
	}
}

func WithTemperature(temperature float64) ClientOption {
	return func(c *openaiClient) {
		c.temperature = temperature
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *openaiClient) {
		c.baseURL = baseURL
	}
}

// NewOpenAIClient creates a Client backed by the OpenAI chat completions API.
// The SDK's automatic retries are disabled: one call is one request.
func NewOpenAIClient(apiKey string, opts ...ClientOption) Client {
	client := openaiClient{
		chatModel:   DefaultChatModel,
		temperature: DefaultTemperature,
	}

	for _, opt := range opts {
		opt(&client)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if client.baseURL != "" {
		// request paths are resolved relative to the base URL
		if !strings.HasSuffix(client.baseURL, "/") {
			client.baseURL += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(client.baseURL))
	}
	client.openai = openai.NewClient(reqOpts...)

	return client
}

// GenerateCompletion handles the common OpenAI chat completion logic
// https://github.com/openai/openai-go/blob/8a8855d08ef84f47163deb4ce9febc4a7e02dd3d/examples/structured-outputs/main.go#L49
func (c openaiClient) GenerateCompletion(ctx context.Context, messages []Message, schema Schema) (string, error) {
	chat, err := c.openai.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(c.chatModel),
			Messages:    openai.F(c.convertMessages(messages)),
			Temperature: openai.F(c.temperature),
			ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
				openai.ResponseFormatJSONSchemaParam{
					Type: openai.F(openai.ResponseFormatJSONSchemaTypeJSONSchema),
					JSONSchema: openai.F(openai.ResponseFormatJSONSchemaJSONSchemaParam{
						Name:        openai.F(schema.Name),
						Description: openai.F(schema.Description),
						Schema:      openai.F(schema.Schema),
						Strict:      openai.Bool(true),
					}),
				},
			),
		})
	if err != nil {
		return "", err
	}

	return firstChoice(chat)
}

func (c openaiClient) GenerateCompletionSimple(ctx context.Context, messages []Message) (string, error) {
	chat, err := c.openai.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(c.chatModel),
			Messages:    openai.F(c.convertMessages(messages)),
			Temperature: openai.F(c.temperature),
		})
	if err != nil {
		return "", err
	}

	return firstChoice(chat)
}

func firstChoice(chat *openai.ChatCompletion) (string, error) {
	if chat == nil || len(chat.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	choice := chat.Choices[0]
	if choice.FinishReason == openai.ChatCompletionChoicesFinishReasonLength {
		return "", fmt.Errorf("%w after %d characters", ErrTruncated, len(choice.Message.Content))
	}
	return choice.Message.Content, nil
}

func (c openaiClient) convertMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, m := range messages {
		if m.Role == RoleUser {
			msgs[i] = openai.UserMessage(m.Content)
		} else {
			msgs[i] = openai.SystemMessage(m.Content)
		}
	}
	return msgs
}
