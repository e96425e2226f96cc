package sequence

import "time"

// Sequence is a multi-step outreach plan for one position.
type Sequence struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Position       string    `json:"position"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	Steps          []Step    `json:"steps"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Step is one message of a sequence. Order starts at 0.
type Step struct {
	ID         string    `json:"id"`
	SequenceID string    `json:"sequence_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StepDraft is a step before it is persisted; also the shape the model returns.
type StepDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	UserID         string
	Title          string
	Position       string
	AdditionalInfo string
}

type UpdateInput struct {
	SequenceID string
	UserID     string
	Steps      []StepDraft
}

// RefineStepInput targets StepID, or the first step of SequenceID when StepID is empty.
// A non-empty Content replaces the step as is; otherwise Feedback drives a rewrite.
type RefineStepInput struct {
	SequenceID string
	StepID     string
	Feedback   string
	Content    string
}

// --- UseCase Outputs ---

type StepAnalysis struct {
	StepID             string `json:"step_id"`
	Title              string `json:"title"`
	WordCount          int    `json:"word_count"`
	WithinLengthBand   bool   `json:"within_length_band"`
	HasPersonalization bool   `json:"has_personalization"`
	HasCallToAction    bool   `json:"has_call_to_action"`
}

type Analysis struct {
	SequenceID     string         `json:"sequence_id"`
	StepCount      int            `json:"step_count"`
	OverallQuality string         `json:"overall_quality"`
	Steps          []StepAnalysis `json:"steps"`
	Suggestions    []string       `json:"suggestions"`
}
