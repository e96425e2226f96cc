package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"outreach-agent/internal/sequence"
	"outreach-agent/pkg/llmprovider"
)

func (uc *implUseCase) generateSteps(ctx context.Context, position, company, description, additionalInfo string) ([]sequence.StepDraft, error) {
	text, err := uc.complete(ctx, generatePrompt(position, company, description, additionalInfo), generateMaxTokens)
	if err != nil {
		return nil, err
	}
	return parseSteps(text)
}

func (uc *implUseCase) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	system := llmprovider.TextMessage("system", writerInstruction)
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", prompt)},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func generatePrompt(position, company, description, additionalInfo string) string {
	if strings.TrimSpace(company) == "" {
		company = defaultCompanyName
	}
	var descLine, extra string
	if description != "" {
		descLine = "- Company Description: " + description + "\n"
	}
	if additionalInfo != "" {
		extra = "Additional Information:\n" + additionalInfo + "\n"
	}
	return fmt.Sprintf(generatePromptTemplate, position, company, descLine, extra)
}

func refinePrompt(current, feedback string) string {
	return fmt.Sprintf(refinePromptTemplate, current, feedback)
}

// parseSteps extracts the JSON array between the first '[' and the last ']'
// of the model's answer. Steps missing a title or content are dropped.
func parseSteps(text string) ([]sequence.StepDraft, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in response", sequence.ErrInvalidGeneration)
	}

	var raw []sequence.StepDraft
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", sequence.ErrInvalidGeneration, err)
	}

	drafts := make([]sequence.StepDraft, 0, len(raw))
	for _, d := range raw {
		d.Title = strings.TrimSpace(d.Title)
		d.Content = strings.TrimSpace(d.Content)
		if d.Title == "" || d.Content == "" {
			continue
		}
		drafts = append(drafts, d)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: empty step list", sequence.ErrInvalidGeneration)
	}
	return drafts, nil
}
