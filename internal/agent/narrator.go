package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skysense/airspace-agent/internal/flight"
)

// Narrator turns flight data into natural-language text through the
// completion backend. Every method returns a usable string: failures of any
// kind come back as human-readable text naming the operation and cause,
// never as an error. A broken backend must not break the conversation.
type Narrator struct {
	client CompletionClient
}

// NewNarrator creates a Narrator over an injected completion client.
func NewNarrator(client CompletionClient) *Narrator {
	return &Narrator{client: client}
}

// TravelerAnswer answers a traveler question grounded strictly in the given
// flight record.
func (n *Narrator) TravelerAnswer(ctx context.Context, record flight.Record, question string) string {
	grounded, err := json.Marshal(record)
	if err != nil {
		return fmt.Sprintf("I encountered an error while preparing the flight data: %v", err)
	}

	user := fmt.Sprintf("Flight data: %s\nUser question: %s", grounded, question)
	answer, err := n.client.Complete(ctx, travelerSystemPrompt, user)
	if err != nil {
		return fmt.Sprintf("I encountered an error while generating a response: %v", err)
	}
	return answer
}

// TravelerNotFound is the fixed message for a callsign with no live data.
// It never reaches the completion backend.
func (n *Narrator) TravelerNotFound(callsign, region string) string {
	return fmt.Sprintf(
		"I could not find any live data for callsign '%s' in the latest snapshot for region '%s'. "+
			"Please double-check the callsign or region.",
		callsign, region,
	)
}

// OpsSummary produces the region-wide operational summary from a compact
// snapshot.
func (n *Narrator) OpsSummary(ctx context.Context, compact flight.CompactSnapshot) string {
	grounded, err := json.Marshal(compact)
	if err != nil {
		return fmt.Sprintf("I encountered an error while preparing the ops summary for '%s': %v", compact.Region, err)
	}

	user := fmt.Sprintf(
		"Here is a compact snapshot for the region. "+
			"Use the total_flights field for overall counts, and states for detail:\n%s\n\nSummarise the region.",
		grounded,
	)
	summary, err := n.client.Complete(ctx, opsSystemPrompt, user)
	if err != nil {
		return fmt.Sprintf("I encountered an error while generating the ops summary for '%s': %v", compact.Region, err)
	}
	return summary
}
