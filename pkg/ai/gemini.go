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

	"go.uber.org/zap"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/internal/utils/logging"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/allergen"
	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dietary"
)

type GeminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey: utils.GetConfig("GEMINI_API_KEY"),
		model:  utils.GetConfig("GEMINI_MODEL"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *GeminiClient) DetectDishes(ctx context.Context, imageData []byte, mimeType string) ([]DetectedDish, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []map[string]interface{}{
		{"text": buildDetectDishesPrompt()},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(imageData),
			},
		},
	}

	text, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	raw := ExtractJSONArray(text)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to parse detected dishes: %w", err)
	}

	// Items failing validation are dropped, never surfaced as errors.
	var dishes []DetectedDish
	for _, item := range items {
		var dish DetectedDish
		if err := json.Unmarshal(item, &dish); err != nil {
			logging.LogWarn("dropping malformed detected dish", zap.Error(err))
			continue
		}
		if dish.Name == "" {
			continue
		}
		dishes = append(dishes, dish)
	}

	return dishes, nil
}

func (g *GeminiClient) ClassifyIngredient(ctx context.Context, name string) ([]string, error) {
	vocabulary := make([]string, 0, len(allergen.Vocabulary))
	for _, category := range allergen.Vocabulary {
		vocabulary = append(vocabulary, string(category))
	}

	parts := []map[string]interface{}{
		{"text": buildClassifyIngredientPrompt(name, vocabulary)},
	}

	text, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	raw := ExtractJSONArray(text)
	if raw == "" {
		// Some model variants wrap the array in an object.
		object := ExtractJSONObject(text)
		if object == "" {
			return nil, ErrEmptyResponse
		}
		var wrapped struct {
			Allergens []string `json:"allergens"`
		}
		if err := json.Unmarshal([]byte(object), &wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse allergen classification: %w", err)
		}
		return wrapped.Allergens, nil
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, fmt.Errorf("failed to parse allergen classification: %w", err)
	}
	return categories, nil
}

func (g *GeminiClient) JudgeDietaryStyle(ctx context.Context, category string, dishes []dietary.StyleDishInput) ([]dietary.StyleVerdict, error) {
	parts := []map[string]interface{}{
		{"text": buildDietaryStylePrompt(category, dishes)},
	}

	text, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	raw := ExtractJSONArray(text)
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to parse dietary verdicts: %w", err)
	}

	var verdicts []dietary.StyleVerdict
	for _, item := range items {
		var verdict dietary.StyleVerdict
		if err := json.Unmarshal(item, &verdict); err != nil {
			logging.LogWarn("dropping malformed dietary verdict", zap.Error(err))
			continue
		}
		if verdict.DishID == "" {
			continue
		}
		verdicts = append(verdicts, verdict)
	}

	return verdicts, nil
}

func (g *GeminiClient) generate(ctx context.Context, parts []map[string]interface{}) (string, error) {
	if g.apiKey == "" || g.model == "" {
		return "", ErrNotConfigured
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.1,
			"maxOutputTokens": 4096,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		logging.LogError("gemini request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		logging.LogError("gemini api error",
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(started)),
		)
		return "", fmt.Errorf("gemini api error: %s", resp.Status)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	logging.LogInfo("gemini request complete",
		zap.String("model", g.model),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result.Candidates[0].Content.Parts[0].Text, nil
}
