package api

import (
	"context"
	"fmt"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
)

// unavailableGateway stands in when no backend is configured.
type unavailableGateway struct{}

func (unavailableGateway) Seal(context.Context, string) (sealapi.SealResponse, error) {
	return sealapi.SealResponse{}, fmt.Errorf("%w: no backend configured", sealapi.ErrConnection)
}

func (unavailableGateway) Verify(context.Context, string) (sealapi.VerifyResponse, error) {
	return sealapi.VerifyResponse{}, fmt.Errorf("%w: no backend configured", sealapi.ErrConnection)
}

func (unavailableGateway) Resolve(context.Context, string) (sealapi.ResolveResponse, error) {
	return sealapi.ResolveResponse{}, fmt.Errorf("%w: no backend configured", sealapi.ErrConnection)
}

func (unavailableGateway) List(context.Context) (sealapi.ListResponse, error) {
	return sealapi.ListResponse{}, fmt.Errorf("%w: no backend configured", sealapi.ErrConnection)
}
