package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/config"
	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/utils"
	"github.com/MKhiriev/go-grocery-list/models"
)

type geminiAssistant struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewGeminiAssistant calls the Gemini generateContent endpoint under
// cfg.BaseURL and asks for JSON output.
func NewGeminiAssistant(cfg config.ClientAssist, log *logger.Logger) Assistant {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultAssistBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = config.DefaultAssistModel
	}

	return &geminiAssistant{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		model:  model,
		logger: log,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *geminiAssistant) Suggest(ctx context.Context, name string) (models.Suggestion, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Suggestion{}, false
	}

	raw, err := g.generate(ctx, suggestPrompt(name))
	if err != nil {
		g.logger.Err(err).Str("item", name).Msg("categorization request failed")
		return models.Suggestion{}, false
	}

	s, ok, err := ParseSuggestion(raw)
	if err != nil {
		g.logger.Warn().Err(err).Str("item", name).Msg("ignoring categorization output")
		return models.Suggestion{}, false
	}

	return s, ok
}

func (g *geminiAssistant) Expand(ctx context.Context, text string) []models.ItemDraft {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	raw, err := g.generate(ctx, expandPrompt(text))
	if err != nil {
		g.logger.Err(err).Msg("recipe expansion request failed")
		return nil
	}

	drafts, err := ParseDrafts(raw)
	if err != nil {
		g.logger.Warn().Err(err).Msg("ignoring recipe expansion output")
		return nil
	}

	return drafts
}

func (g *geminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(body).
		Post("/models/" + url.PathEscape(g.model) + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var out generateResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	var sb strings.Builder
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
