package sealbar

import (
	"context"
	"strings"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
)

// Gateway is the part of the backend the widget calls.
type Gateway interface {
	Seal(ctx context.Context, text string) (sealapi.SealResponse, error)
	Resolve(ctx context.Context, hash string) (sealapi.ResolveResponse, error)
}

// Outcome is the settled result of one submission.
type Outcome struct {
	Tab     Tab
	Failure Notice
	Hash    string
	Record  *sealapi.SealRecord
	// Err is the gateway error behind a connection failure, kept for logging.
	Err error
}

// Sealed reports whether the outcome is a successful seal.
func (o Outcome) Sealed() bool {
	return o.Tab == TabSeal && o.Failure.IsZero() && o.Hash != ""
}

// Call runs the backend operation for ticket.
func Call(ctx context.Context, gateway Gateway, ticket Ticket) Outcome {
	out := Outcome{Tab: ticket.Tab}
	if gateway == nil {
		out.Failure = Notice{Key: ErrKeyConnection}
		return out
	}
	switch ticket.Tab {
	case TabResolve:
		resp, err := gateway.Resolve(ctx, strings.TrimSpace(ticket.Input))
		if err != nil {
			out.Failure = Notice{Key: ErrKeyConnection}
			out.Err = err
			return out
		}
		if !resp.Found || resp.Record == nil {
			out.Failure = Notice{Key: ErrKeyNotFound, Text: resp.Message}
			return out
		}
		record := *resp.Record
		out.Record = &record
	default:
		resp, err := gateway.Seal(ctx, ticket.Input)
		if err != nil {
			out.Failure = Notice{Key: ErrKeyConnection}
			out.Err = err
			return out
		}
		if strings.TrimSpace(resp.Hash) == "" {
			out.Failure = Notice{Key: ErrKeyUnexpected}
			return out
		}
		out.Hash = resp.Hash
	}
	return out
}

// Submit runs one submission end to end. It reports false when no request was
// issued. The returned outcome may have been discarded by a tab switch.
func (w *Widget) Submit(ctx context.Context, gateway Gateway) (Outcome, bool) {
	ticket, ok := w.Begin()
	if !ok {
		return Outcome{}, false
	}
	outcome := Call(ctx, gateway, ticket)
	w.Complete(ticket, outcome)
	return outcome, true
}
