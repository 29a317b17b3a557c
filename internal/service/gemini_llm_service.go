package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/hoangnm/air-platform/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// LLMResponse is the flattened result of one text-generation call.
type LLMResponse struct {
	Content     string
	Model       string
	TotalTokens int32
}

// LLMService is the external text-generation capability. Synchronous
// request/response, no streaming. Callers bound every call with a context
// timeout and decide for themselves whether a failure is fatal.
type LLMService interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (*LLMResponse, error)
}

type geminiLLMService struct {
	client *genai.Client
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (LLMService, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. LLM service will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{client: client, cfg: cfg}, nil
}

func (s *geminiLLMService) Generate(ctx context.Context, systemPrompt, prompt string) (*LLMResponse, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	model := s.client.GenerativeModel(s.cfg.Gemini.Model)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", s.cfg.Gemini.Model).Msg("Gemini API error")
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	content := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			content += string(txt)
		}
	}

	out := &LLMResponse{Content: content, Model: s.cfg.Gemini.Model}
	if resp.UsageMetadata != nil {
		out.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}
	return out, nil
}
