package http

import (
	"time"

	"outreach-agent/internal/sequence"
)

// --- Request DTOs ---

type generateReq struct {
	UserID         string `json:"userId"`
	Title          string `json:"title"`
	Position       string `json:"position" binding:"required"`
	AdditionalInfo string `json:"additionalInfo"`
}

func (r generateReq) toInput() sequence.CreateInput {
	return sequence.CreateInput{
		UserID:         r.UserID,
		Title:          r.Title,
		Position:       r.Position,
		AdditionalInfo: r.AdditionalInfo,
	}
}

type stepReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type updateReq struct {
	SequenceID string    `json:"sequenceId" binding:"required"`
	UserID     string    `json:"userId"`
	Steps      []stepReq `json:"steps" binding:"required,min=1"`
}

func (r updateReq) toInput() sequence.UpdateInput {
	steps := make([]sequence.StepDraft, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = sequence.StepDraft{Title: s.Title, Content: s.Content}
	}
	return sequence.UpdateInput{SequenceID: r.SequenceID, UserID: r.UserID, Steps: steps}
}

type refineReq struct {
	SequenceID string `json:"sequenceId"`
	StepID     string `json:"stepId"`
	Feedback   string `json:"feedback"`
	Content    string `json:"content"`
}

func (r refineReq) toInput() sequence.RefineStepInput {
	return sequence.RefineStepInput{
		SequenceID: r.SequenceID,
		StepID:     r.StepID,
		Feedback:   r.Feedback,
		Content:    r.Content,
	}
}

// --- Response DTOs ---

type stepResp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

func newStepResp(s sequence.Step) stepResp {
	return stepResp{ID: s.ID, Title: s.Title, Content: s.Content, Order: s.Order}
}

type sequenceResp struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Position       string     `json:"position"`
	UserID         string     `json:"userId"`
	AdditionalInfo string     `json:"additionalInfo"`
	Steps          []stepResp `json:"steps"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func newSequenceResp(s sequence.Sequence) sequenceResp {
	steps := make([]stepResp, len(s.Steps))
	for i, st := range s.Steps {
		steps[i] = newStepResp(st)
	}
	return sequenceResp{
		ID:             s.ID,
		Title:          s.Title,
		Position:       s.Position,
		UserID:         s.UserID,
		AdditionalInfo: s.AdditionalInfo,
		Steps:          steps,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type listResp struct {
	Sequences []sequenceResp `json:"sequences"`
}

func newListResp(seqs []sequence.Sequence) listResp {
	out := make([]sequenceResp, len(seqs))
	for i, s := range seqs {
		out[i] = newSequenceResp(s)
	}
	return listResp{Sequences: out}
}

type refineResp struct {
	Step stepResp `json:"step"`
}
