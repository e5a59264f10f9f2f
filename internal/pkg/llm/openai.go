package llm

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const defaultOpenAIModel = shared.ResponsesModel("gpt-5.1")

// OpenAIClient adapts the OpenAI Responses API to the TextGenerator contract.
type OpenAIClient struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	m := defaultOpenAIModel
	if model != "" {
		m = shared.ResponsesModel(model)
	}

	return &OpenAIClient{client: &client, model: m}
}

func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: o.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return "", err
	}

	output := strings.TrimSpace(resp.OutputText())
	if output == "" {
		return "", ErrEmptyResponse
	}

	return output, nil
}
