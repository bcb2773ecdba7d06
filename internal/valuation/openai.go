package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// SalarySheet is the structured output the model must produce.
type SalarySheet struct {
	Salaries []SalaryRow `json:"salaries" jsonschema_description:"Every rosterable player with a salary and tier"`
}

type SalaryRow struct {
	Name     string `json:"name" jsonschema_description:"Player full name as it appears in the input data"`
	ProTeam  string `json:"proTeam" jsonschema_description:"NFL team abbreviation"`
	Position string `json:"position" jsonschema_description:"Roster position (QB, RB, WR, TE, K, D/ST)"`
	Salary   int    `json:"salary" jsonschema_description:"Auction salary in whole dollars"`
	Tier     int    `json:"tier" jsonschema_description:"Ordinal tier within the position, 1 is best"`
}

// Service runs the valuation prompt and returns the structured sheet.
type Service interface {
	Valuate(ctx context.Context, prompt string) (*SalarySheet, error)
}

type serviceImpl struct {
	client openai.Client
	schema interface{}
}

// GenerateSchema generates a JSON schema for a given type.
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// NewService builds a Service backed by the OpenAI API. OPENAI_API_KEY must
// be set.
func NewService() (Service, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	return &serviceImpl{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		schema: GenerateSchema[SalarySheet](),
	}, nil
}

func (s *serviceImpl) Valuate(ctx context.Context, prompt string) (*SalarySheet, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "salary_sheet",
		Description: openai.String("Auction salaries and tiers for every rosterable player"),
		Schema:      s.schema,
		Strict:      openai.Bool(true),
	}

	respFormat := openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
	}

	chat, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are an expert fantasy football auction analyst. Follow the valuation instructions exactly and output strictly in JSON."),
			openai.UserMessage(prompt),
		},
		ResponseFormat: respFormat,
		Model:          openai.ChatModelGPT4o,
	})
	if err != nil {
		return nil, fmt.Errorf("error calling OpenAI API: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("received empty response from OpenAI")
	}

	var sheet SalarySheet
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &sheet); err != nil {
		return nil, fmt.Errorf("error unmarshalling OpenAI response: %w", err)
	}
	return &sheet, nil
}
