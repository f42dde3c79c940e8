package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GeminiConfig holds credentials and model names for the Gemini backend.
type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
	VideoModel string
	BaseURL    string
}

type geminiGenerator struct {
	config GeminiConfig
	client *http.Client
}

// NewGemini creates a ContentGenerator backed by the Google Gemini REST API
// (POST /v1beta/models/{model}:generateContent).
func NewGemini(cfg GeminiConfig) ContentGenerator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	return &geminiGenerator{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

func (g *geminiGenerator) GenerateCopy(ctx context.Context, prompt, platform, factsheet string) (string, error) {
	fullPrompt := fmt.Sprintf(`You are an expert real estate marketer for a luxury real estate firm.
Generate a compelling social media post for the %s platform.
**Platform Specific Instructions:** %s
**Core Topic/Keywords:** %s
Generate only the text for the post body.`, platform, platformInstruction(platform), prompt)
	if factsheet != "" {
		fullPrompt += "\n**Project Factsheet:**\n" + factsheet
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fullPrompt}}},
		},
	}

	var result geminiResponse
	if err := g.post(ctx, g.config.TextModel+":generateContent", body, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", ErrGeneration)
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("%w: no text in response", ErrGeneration)
}

func (g *geminiGenerator) EnhanceImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
				{Text: instruction},
			}},
		},
		GenerationConfig: &geminiGenerationConfig{ResponseModalities: []string{"IMAGE"}},
	}

	var result geminiResponse
	if err := g.post(ctx, g.config.ImageModel+":generateContent", body, &result); err != nil {
		return nil, "", err
	}

	for _, candidate := range result.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			imgBytes, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, "", fmt.Errorf("%w: decode image: %v", ErrGeneration, err)
			}
			contentType := part.InlineData.MimeType
			if contentType == "" {
				contentType = "image/jpeg"
			}
			return imgBytes, contentType, nil
		}
	}
	return nil, "", fmt.Errorf("%w: no image data in response", ErrGeneration)
}

// GenerateVideo starts a long-running Veo render and polls the returned
// operation until the backend reports completion.
func (g *geminiGenerator) GenerateVideo(ctx context.Context, prompt, sourceAssetURL string) (string, error) {
	fullPrompt := prompt
	if sourceAssetURL != "" {
		fullPrompt += "\nSource footage: " + sourceAssetURL
	}

	start := veoRequest{
		Instances: []veoInstance{{Prompt: fullPrompt}},
	}

	var op veoOperation
	if err := g.post(ctx, g.config.VideoModel+":predictLongRunning", start, &op); err != nil {
		return "", err
	}
	if op.Name == "" {
		return "", fmt.Errorf("%w: no operation returned", ErrGeneration)
	}

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for !op.Done {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
		if err := g.get(ctx, op.Name, &op); err != nil {
			return "", err
		}
	}

	if op.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrGeneration, op.Error.Message)
	}
	for _, sample := range op.Response.GenerateVideoResponse.GeneratedSamples {
		if sample.Video.URI != "" {
			return sample.Video.URI, nil
		}
	}
	return "", fmt.Errorf("%w: no video in response", ErrGeneration)
}

func (g *geminiGenerator) post(ctx context.Context, path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gemini marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s", g.config.BaseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return g.do(req, out)
}

func (g *geminiGenerator) get(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s/v1beta/%s", g.config.BaseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("gemini request: %w", err)
	}
	return g.do(req, out)
}

func (g *geminiGenerator) do(req *http.Request, out any) error {
	req.Header.Set("x-goog-api-key", g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrGeneration, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrGeneration, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", ErrGeneration, err)
	}
	return nil
}

// --- Gemini API types ---

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// --- Veo long-running operation types ---

type veoInstance struct {
	Prompt string `json:"prompt"`
}

type veoRequest struct {
	Instances []veoInstance `json:"instances"`
}

type veoOperation struct {
	Name     string    `json:"name"`
	Done     bool      `json:"done"`
	Error    *veoError `json:"error,omitempty"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
}

type veoError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
