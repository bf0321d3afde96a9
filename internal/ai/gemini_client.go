package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

type GeminiClient struct {
	client *genai.Client
	text   *genai.GenerativeModel
	vision *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	text := client.GenerativeModel(model)
	text.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(ReceptionistPrompt)}}

	vision := client.GenerativeModel(model)
	vision.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(VisionPrompt)}}

	return &GeminiClient{client: client, text: text, vision: vision}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) CompleteText(ctx context.Context, question, lang, name string) (string, error) {
	resp, err := g.text.GenerateContent(ctx, genai.Text(userContext(question, lang, name)))
	if err != nil {
		logger.FromContext(ctx).Warn("gemini error", zap.Error(err))
		return "", fmt.Errorf("%w: gemini: %v", ErrUnavailable, err)
	}
	return joinText(resp)
}

func (g *GeminiClient) CompleteVision(ctx context.Context, img Image, caption, lang string) (string, error) {
	format := strings.TrimPrefix(img.MimeType, "image/")
	if format == "" || format == img.MimeType {
		format = "jpeg"
	}

	resp, err := g.vision.GenerateContent(ctx,
		genai.Text(visionContext(caption, lang)),
		genai.ImageData(format, img.Data),
	)
	if err != nil {
		logger.FromContext(ctx).Warn("gemini vision error", zap.Error(err))
		return "", fmt.Errorf("%w: gemini: %v", ErrUnavailable, err)
	}
	return joinText(resp)
}

func joinText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned empty text", ErrUnavailable)
	}
	return text, nil
}
