// Package advisor generates investment recommendation texts with Gemini.
package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
You are a financial advisor writing for a retail investor running a
simulated portfolio. Be factual, mention both upside and risks, and
never present the recommendation as personalized financial advice.
`

// Advisor wraps a Gemini client configured for recommendation texts.
type Advisor struct {
	client *genai.Client
	model  string
}

// New creates an Advisor. The Gemini client reads its API key from the
// environment (GEMINI_API_KEY or GOOGLE_API_KEY).
func New(ctx context.Context) (*Advisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	return &Advisor{client: client, model: model}, nil
}

// Recommend generates an investment recommendation for the company
// trading under the given ticker.
func (a *Advisor) Recommend(ctx context.Context, symbol string) (string, error) {
	prompt := fmt.Sprintf("Write an investment recommendation of the company under the ticker %s. Do not format it as a letter.", symbol)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("recommendation for %s failed: %w", symbol, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from model %s", a.model)
	}
	return resp.Text(), nil
}
