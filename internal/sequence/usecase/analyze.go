package usecase

import (
	"context"
	"fmt"
	"strings"

	"outreach-agent/internal/sequence"
)

// Analyze scores a sequence against the outreach guidelines the agent writes by.
func (uc *implUseCase) Analyze(ctx context.Context, sequenceID string) (sequence.Analysis, error) {
	seq, err := uc.Detail(ctx, sequenceID)
	if err != nil {
		return sequence.Analysis{}, err
	}
	return analyze(seq), nil
}

func analyze(seq sequence.Sequence) sequence.Analysis {
	a := sequence.Analysis{
		SequenceID:  seq.ID,
		StepCount:   len(seq.Steps),
		Steps:       make([]sequence.StepAnalysis, 0, len(seq.Steps)),
		Suggestions: make([]string, 0),
	}

	if a.StepCount < 3 {
		a.Suggestions = append(a.Suggestions,
			fmt.Sprintf("The sequence has %d step(s); add follow-ups to reach at least 3 touches", a.StepCount))
	}

	for i, st := range seq.Steps {
		words := len(strings.Fields(st.Content))
		sa := sequence.StepAnalysis{
			StepID:             st.ID,
			Title:              st.Title,
			WordCount:          words,
			WithinLengthBand:   words >= minWords && words <= maxWords,
			HasPersonalization: strings.Contains(st.Content, personalizationPlaceholder),
			HasCallToAction:    hasCallToAction(st.Content),
		}
		a.Steps = append(a.Steps, sa)

		label := fmt.Sprintf("Step %d (%s)", i+1, st.Title)
		switch {
		case words < minWords:
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("%s is short at %d words; aim for %d-%d", label, words, minWords, maxWords))
		case words > maxWords:
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("%s is long at %d words; trim it to %d or fewer", label, words, maxWords))
		}
		if !sa.HasPersonalization {
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("%s has no %s placeholder", label, personalizationPlaceholder))
		}
	}

	if n := len(a.Steps); n > 0 && !a.Steps[n-1].HasCallToAction {
		a.Suggestions = append(a.Suggestions, "End the final step with a clear call-to-action")
	}

	switch {
	case len(a.Suggestions) == 0:
		a.OverallQuality = "good"
	case len(a.Suggestions) <= 2:
		a.OverallQuality = "fair"
	default:
		a.OverallQuality = "needs_work"
	}
	return a
}

func hasCallToAction(content string) bool {
	lower := strings.ToLower(content)
	for _, m := range callToActionMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
