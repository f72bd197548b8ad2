// Package sealapi is the HTTP JSON client for the seal backend.
//
// The backend owns every record; this package only forwards requests and
// decodes the responses described by the wire contract:
//
//	POST /seal     {text} -> SealResponse
//	POST /verify   {text} -> VerifyResponse
//	POST /resolve  {hash} -> ResolveResponse
//	GET  /list            -> ListResponse
package sealapi

import (
	"context"
	"strings"
	"time"
)

// SealRecord is one sealed document as stored by the backend.
type SealRecord struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text,omitempty"`
}

// SealedAt parses Timestamp as RFC 3339. The bool is false when the backend
// used another format.
func (r SealRecord) SealedAt() (time.Time, bool) {
	ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(r.Timestamp))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// SealRequest is the body of POST /seal and POST /verify.
type SealRequest struct {
	Text string `json:"text"`
}

// ResolveRequest is the body of POST /resolve.
type ResolveRequest struct {
	Hash string `json:"hash"`
}

// SealResponse is the result of a seal request.
type SealResponse struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// VerifyResponse is the result of a verify lookup. Record is nil on a miss.
type VerifyResponse struct {
	Valid   bool        `json:"valid"`
	Message string      `json:"message"`
	Record  *SealRecord `json:"record,omitempty"`
}

// ResolveResponse is the result of a resolve lookup. Record is nil on a miss.
type ResolveResponse struct {
	Found   bool        `json:"found"`
	Message string      `json:"message"`
	Record  *SealRecord `json:"record,omitempty"`
}

// ListResponse is the result of GET /list.
type ListResponse struct {
	Count   int          `json:"count"`
	Records []SealRecord `json:"records"`
}

// Service is the set of backend operations. *Client and the in-memory mock
// both satisfy it.
type Service interface {
	Seal(ctx context.Context, text string) (SealResponse, error)
	Verify(ctx context.Context, text string) (VerifyResponse, error)
	Resolve(ctx context.Context, hash string) (ResolveResponse, error)
	List(ctx context.Context) (ListResponse, error)
}
