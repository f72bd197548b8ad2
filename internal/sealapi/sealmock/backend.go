// Package sealmock is an in-memory stand-in for the seal backend.
//
// It hashes text with SHA-256 and keeps records in a map. It exists so the
// web front end can run without a backend and so clients can be tested
// against the real wire contract.
package sealmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/crypto-seal/internal/sealapi"
)

// Messages returned in response bodies.
const (
	MsgSealed        = "Document sealed successfully"
	MsgAlreadySealed = "Document was already sealed"
	MsgVerified      = "Document verified"
	MsgNotVerified   = "Document has not been sealed"
	MsgFound         = "Record found"
	MsgNotFound      = "No record found for this hash"
)

// ErrEmptyInput is returned when text or hash is blank.
var ErrEmptyInput = errors.New("input is required")

// Backend is a concurrency-safe in-memory seal store.
type Backend struct {
	mu      sync.RWMutex
	byHash  map[string]sealapi.SealRecord
	order   []string
	latency time.Duration
	now     func() time.Time
	newID   func() string
}

// Option customizes a Backend.
type Option func(*Backend)

// WithLatency delays every operation by d, as a slow network would.
func WithLatency(d time.Duration) Option {
	return func(b *Backend) {
		if d > 0 {
			b.latency = d
		}
	}
}

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator replaces the uuid record id generator.
func WithIDGenerator(newID func() string) Option {
	return func(b *Backend) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// New returns an empty backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		byHash: make(map[string]sealapi.SealRecord),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// HashText returns the lowercase hex SHA-256 digest of text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Seal stores text and returns its hash. Sealing the same text twice returns
// the first record.
func (b *Backend) Seal(ctx context.Context, text string) (sealapi.SealResponse, error) {
	if err := b.wait(ctx); err != nil {
		return sealapi.SealResponse{}, err
	}
	if strings.TrimSpace(text) == "" {
		return sealapi.SealResponse{}, ErrEmptyInput
	}
	hash := HashText(text)

	b.mu.Lock()
	defer b.mu.Unlock()
	if existing, ok := b.byHash[hash]; ok {
		return sealResponse(existing, MsgAlreadySealed), nil
	}
	record := sealapi.SealRecord{
		ID:        b.newID(),
		Hash:      hash,
		Timestamp: b.now().UTC().Format(time.RFC3339Nano),
		Text:      text,
	}
	b.byHash[hash] = record
	b.order = append(b.order, hash)
	return sealResponse(record, MsgSealed), nil
}

// Verify reports whether text was sealed.
func (b *Backend) Verify(ctx context.Context, text string) (sealapi.VerifyResponse, error) {
	if err := b.wait(ctx); err != nil {
		return sealapi.VerifyResponse{}, err
	}
	if strings.TrimSpace(text) == "" {
		return sealapi.VerifyResponse{}, ErrEmptyInput
	}
	record, ok := b.lookup(HashText(text))
	if !ok {
		return sealapi.VerifyResponse{Valid: false, Message: MsgNotVerified}, nil
	}
	return sealapi.VerifyResponse{Valid: true, Message: MsgVerified, Record: &record}, nil
}

// Resolve looks a record up by hash. Case and surrounding space are ignored.
func (b *Backend) Resolve(ctx context.Context, hash string) (sealapi.ResolveResponse, error) {
	if err := b.wait(ctx); err != nil {
		return sealapi.ResolveResponse{}, err
	}
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return sealapi.ResolveResponse{}, ErrEmptyInput
	}
	record, ok := b.lookup(hash)
	if !ok {
		return sealapi.ResolveResponse{Found: false, Message: MsgNotFound}, nil
	}
	return sealapi.ResolveResponse{Found: true, Message: MsgFound, Record: &record}, nil
}

// List returns every record, newest first.
func (b *Backend) List(ctx context.Context) (sealapi.ListResponse, error) {
	if err := b.wait(ctx); err != nil {
		return sealapi.ListResponse{}, err
	}
	b.mu.RLock()
	records := make([]sealapi.SealRecord, 0, len(b.order))
	for i := len(b.order) - 1; i >= 0; i-- {
		records = append(records, b.byHash[b.order[i]])
	}
	b.mu.RUnlock()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return sealapi.ListResponse{Count: len(records), Records: records}, nil
}

func (b *Backend) lookup(hash string) (sealapi.SealRecord, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	record, ok := b.byHash[hash]
	return record, ok
}

func (b *Backend) wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func sealResponse(record sealapi.SealRecord, message string) sealapi.SealResponse {
	return sealapi.SealResponse{
		ID:        record.ID,
		Hash:      record.Hash,
		Timestamp: record.Timestamp,
		Message:   message,
	}
}

var _ sealapi.Service = (*Backend)(nil)
