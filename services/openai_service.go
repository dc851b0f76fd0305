package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Mainu/models"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// OpenAIMenuService asks an OpenAI-compatible chat model for the menu JSON
// directly, skipping the proxy. Its output goes through the same normalizer.
type OpenAIMenuService struct {
	client    *openai.Client
	model     string
	languages Languages
	logger    *zap.Logger
}

type menuSchema struct {
	Items []menuItemSchema `json:"items" description:"Every dish found in the menu text, in reading order"`
}

type menuItemSchema struct {
	OriginalName       string   `json:"original_name" description:"Dish name exactly as printed"`
	TranslatedName     string   `json:"translated_name" description:"Dish name translated to the output language"`
	Description        string   `json:"description,omitempty" description:"Short description in the output language"`
	Section            string   `json:"section,omitempty" description:"Menu section heading as printed, e.g. Antipasti"`
	Category           string   `json:"category,omitempty" description:"Dish category when no section heading is printed"`
	Price              string   `json:"price,omitempty" description:"Price with currency symbol as printed"`
	Allergens          []string `json:"allergens,omitempty" description:"Likely allergens, e.g. Gluten, Dairy"`
	SpiceLevel         string   `json:"spice_level,omitempty" description:"One of none, mild, medium, hot"`
	RecommendedPairing string   `json:"recommended_pairing,omitempty" description:"Optional drink or side pairing"`
}

const menuSystemPrompt = `You are an assistant that reads OCR text of restaurant menus and returns a structured JSON menu.
Translate dish names and descriptions from %s into %s.
Keep the original dish names exactly as printed.
Group dishes by the section headings printed on the menu.
If a value is unclear, leave the field out instead of guessing.
Do not add explanations outside the JSON response.`

func NewOpenAIMenuService(apiKey, baseURL, model string, languages Languages, logger *zap.Logger) *OpenAIMenuService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIMenuService{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		languages: languages,
		logger:    logger.With(zap.String("component", "menu_openai")),
	}
}

func (s *OpenAIMenuService) Submit(ctx context.Context, req models.ProcessingRequest) (models.MenuTemplate, error) {
	text := strings.TrimSpace(req.RecognizedText)
	if text == "" {
		s.logger.Info("Submit aborted: empty recognized text")
		return models.MenuTemplate{}, ErrEmptyRecognizedText
	}

	schema, err := jsonschema.GenerateSchemaForType(menuSchema{})
	if err != nil {
		return models.MenuTemplate{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	langIn, langOut := s.languages.resolve(req.LanguageIn, req.LanguageOut)
	s.logger.Info("Submitting menu text",
		zap.String("upload_id", req.UploadID.String()),
		zap.String("model", s.model),
		zap.Int("pages", req.PageCount))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(menuSystemPrompt, langIn, langOut)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "menu",
				Schema: schema,
			},
		},
	})
	if err != nil {
		return models.MenuTemplate{}, s.classify(ctx, err)
	}

	if len(resp.Choices) == 0 {
		s.logger.Warn("No choices in completion")
		return models.MenuTemplate{}, ErrMissingMenuPayload
	}
	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	if content == "" {
		s.logger.Warn("Completion content is empty")
		return models.MenuTemplate{}, ErrMissingMenuPayload
	}

	template, err := buildTemplate(req.UploadID, content)
	if err != nil {
		s.logger.Warn("Failed to build menu from completion", zap.Error(err))
		return models.MenuTemplate{}, err
	}

	s.logger.Info("Menu processed",
		zap.String("upload_id", req.UploadID.String()),
		zap.Int("sections", len(template.Sections)),
		zap.Int("dishes", template.DishCount()))
	return template, nil
}

func (s *OpenAIMenuService) PollStatus(ctx context.Context, templateID uuid.UUID) (models.ProcessingState, error) {
	return models.ProcessingState{}, ErrPollingUnsupported
}

// classify maps client errors onto the processing error taxonomy.
func (s *OpenAIMenuService) classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("menu submission abandoned: %w", ctxErr)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		s.logger.Warn("Unexpected status code", zap.Int("status", apiErr.HTTPStatusCode), zap.String("message", apiErr.Message))
		return &InvalidStatusCodeError{Code: apiErr.HTTPStatusCode}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		s.logger.Warn("Unexpected status code", zap.Int("status", reqErr.HTTPStatusCode))
		return &InvalidStatusCodeError{Code: reqErr.HTTPStatusCode}
	}

	s.logger.Warn("Completion call failed", zap.Error(err))
	return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
}
