package session

import (
	"fmt"
	"strings"
	"time"
)

// ContextAwarePrompt appends the session block to base when an active
// sequence is known, and returns base unchanged otherwise.
func ContextAwarePrompt(base string, snap Snapshot) string {
	if snap.ActiveSequence == nil {
		return base
	}
	return base + "\n" + contextBlock(snap)
}

func contextBlock(snap Snapshot) string {
	seq := snap.ActiveSequence

	lastAction := snap.LastAction
	if lastAction == "" {
		lastAction = "None"
	}
	lastActionTime := "Never"
	if snap.LastActionTime != nil {
		lastActionTime = snap.LastActionTime.UTC().Format(time.RFC3339)
	}

	var b strings.Builder
	b.WriteString("CURRENT CONTEXT:\n")
	fmt.Fprintf(&b, "- Active Sequence: [ID: %s | Position: %s | Title: %s | Steps: %d]\n",
		seq.ID, seq.Position, seq.Title, seq.StepsCount)
	fmt.Fprintf(&b, "- Last Action: %s at %s\n", lastAction, lastActionTime)
	for _, key := range renderedKeys {
		if v, ok := snap.ContextData[key]; ok && v != nil && fmt.Sprint(v) != "" {
			fmt.Fprintf(&b, "- %s: %v\n", key, v)
		}
	}
	b.WriteString(`
HANDLING SHORT MESSAGES:
- Read short inputs such as "sg", "ok" or "yes" as a continuation of the conversation about the active sequence
- Do not generate a new sequence while one is active unless the user clearly asks for a new one
- When a command is ambiguous, ask for clarification instead of assuming the user wants a new sequence
- When the user wants changes, modify the active sequence instead of creating another one
`)
	return b.String()
}
