package agent

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/skysense/airspace-agent/internal/common"
	"github.com/skysense/airspace-agent/internal/flight"
)

// DefaultRegion is assumed when a query names no region.
const DefaultRegion = "region1"

// clarificationMessage is returned when required inputs are missing; this
// path never reaches the completion backend.
const clarificationMessage = "I could not process your request because the callsign or question " +
	"was missing. Please provide both and try again."

// opsTriggerPhrase flips a query into the region-wide pass. A plain
// substring match is deliberate: paraphrases are a known miss, and swapping
// in a real classifier only has to replace NeedsOpsPass.
const opsTriggerPhrase = "other flights"

// QueryRequest is one traveler query as received from the transport layer.
type QueryRequest struct {
	Callsign string
	Question string
	Region   string
}

// QueryResult carries the outcome of routing one query. OpsSummary is nil
// unless the region-wide pass ran.
type QueryResult struct {
	TravelerResponse string
	NeedOps          bool
	OpsSummary       *string
}

// Router decides which narration passes a query needs and composes their
// results. The single-flight and region-wide passes share no state, so when
// both are needed they run concurrently; a failure in the region pass never
// disturbs the traveler response.
type Router struct {
	flights   *flight.Service
	narrator  *Narrator
	maxSample int
}

// NewRouter creates a Router. maxSample bounds the compact snapshot handed
// to the region-wide pass.
func NewRouter(flights *flight.Service, narrator *Narrator, maxSample int) *Router {
	if maxSample <= 0 {
		maxSample = flight.DefaultMaxSample
	}
	return &Router{
		flights:   flights,
		narrator:  narrator,
		maxSample: maxSample,
	}
}

// NeedsOpsPass reports whether the question asks about surrounding traffic.
func (r *Router) NeedsOpsPass(question string) bool {
	return common.HasAny(strings.ToLower(question), opsTriggerPhrase)
}

// Route processes one traveler query end to end.
func (r *Router) Route(ctx context.Context, req QueryRequest) QueryResult {
	if req.Region == "" {
		req.Region = DefaultRegion
	}

	if strings.TrimSpace(req.Callsign) == "" || strings.TrimSpace(req.Question) == "" {
		return QueryResult{
			TravelerResponse: clarificationMessage,
			NeedOps:          false,
		}
	}

	queryID := uuid.NewString()
	needOps := r.NeedsOpsPass(req.Question)
	log.Printf("INFO: query %s callsign=%q region=%s need_ops=%t", queryID, req.Callsign, req.Region, needOps)

	result := QueryResult{NeedOps: needOps}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.TravelerResponse = r.travelerPass(ctx, req)
	}()

	if needOps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary := r.OpsPass(ctx, req.Region)
			result.OpsSummary = &summary
		}()
	}
	wg.Wait()

	return result
}

// travelerPass runs the single-flight pipeline: lookup, then narration
// grounded in the found record, or the fixed not-found message.
func (r *Router) travelerPass(ctx context.Context, req QueryRequest) string {
	record, err := r.flights.Lookup(req.Region, req.Callsign)
	if err != nil {
		if !errors.Is(err, flight.ErrNotFound) {
			log.Printf("ERROR: lookup %q in %s: %v", req.Callsign, req.Region, err)
		}
		return r.narrator.TravelerNotFound(req.Callsign, req.Region)
	}
	return r.narrator.TravelerAnswer(ctx, record, req.Question)
}

// OpsPass runs the region-wide pipeline: fresh snapshot, bounded compaction,
// then summary narration. Also used directly by the ops analysis endpoint.
func (r *Router) OpsPass(ctx context.Context, region string) string {
	snap := r.flights.Snapshot(region)
	compact := flight.Compact(snap, r.maxSample)
	return r.narrator.OpsSummary(ctx, compact)
}
