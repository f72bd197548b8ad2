package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
	module "github.com/louisbranch/crypto-seal/internal/services/web/module"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/httpx"
)

const maxBodyBytes = 64 << 10

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// Seal handles POST /api/seal
// @Summary      Seal text
// @Description  Seals text and returns its hash and timestamp
// @Tags         seal
// @Accept       json
// @Produce      json
// @Param        request  body      sealapi.SealRequest  true  "Text to seal"
// @Success      200      {object}  sealapi.SealResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      429      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /seal [post]
func (h handlers) Seal(w http.ResponseWriter, r *http.Request) {
	var req sealapi.SealRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if !h.allow(w, r, "api.seal") {
		return
	}
	resp, err := h.gateway().Seal(r.Context(), req.Text)
	if err != nil {
		h.upstreamError(w, "seal", err)
		return
	}
	if err := h.deps.Recent.Invalidate(r.Context()); err != nil {
		log.Printf("api seal: %v", err)
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

// Verify handles POST /api/verify
// @Summary      Verify text
// @Description  Reports whether text was sealed
// @Tags         seal
// @Accept       json
// @Produce      json
// @Param        request  body      sealapi.SealRequest  true  "Text to verify"
// @Success      200      {object}  sealapi.VerifyResponse
// @Failure      404      {object}  sealapi.VerifyResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /verify [post]
func (h handlers) Verify(w http.ResponseWriter, r *http.Request) {
	var req sealapi.SealRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if !h.allow(w, r, "api.verify") {
		return
	}
	resp, err := h.gateway().Verify(r.Context(), req.Text)
	if err != nil {
		h.upstreamError(w, "verify", err)
		return
	}
	_ = httpx.WriteJSON(w, lookupStatus(resp.Valid), resp)
}

// Resolve handles POST /api/resolve
// @Summary      Resolve hash
// @Description  Looks up a sealed record by hash
// @Tags         seal
// @Accept       json
// @Produce      json
// @Param        request  body      sealapi.ResolveRequest  true  "Hash to resolve"
// @Success      200      {object}  sealapi.ResolveResponse
// @Failure      404      {object}  sealapi.ResolveResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /resolve [post]
func (h handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	var req sealapi.ResolveRequest
	if !decode(w, r, &req) {
		return
	}
	h.resolve(w, r, req.Hash)
}

// ResolveByPath handles GET /api/resolve/{hash}
// @Summary      Resolve hash
// @Tags         seal
// @Produce      json
// @Param        hash  path      string  true  "Hex hash"
// @Success      200   {object}  sealapi.ResolveResponse
// @Failure      404   {object}  sealapi.ResolveResponse
// @Router       /resolve/{hash} [get]
func (h handlers) ResolveByPath(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, r.PathValue("hash"))
}

func (h handlers) resolve(w http.ResponseWriter, r *http.Request, hash string) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		writeError(w, http.StatusBadRequest, "hash is required")
		return
	}
	if !h.allow(w, r, "api.resolve") {
		return
	}
	resp, err := h.gateway().Resolve(r.Context(), hash)
	if err != nil {
		h.upstreamError(w, "resolve", err)
		return
	}
	_ = httpx.WriteJSON(w, lookupStatus(resp.Found), resp)
}

// List handles GET /api/list
// @Summary      List records
// @Tags         seal
// @Produce      json
// @Success      200  {object}  sealapi.ListResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /list [get]
func (h handlers) List(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "api.list") {
		return
	}
	resp, err := h.gateway().List(r.Context())
	if err != nil {
		h.upstreamError(w, "list", err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) gateway() sealapi.Service {
	if h.deps.Gateway == nil {
		return unavailableGateway{}
	}
	return h.deps.Gateway
}

func (h handlers) allow(w http.ResponseWriter, r *http.Request, route string) bool {
	if h.deps.RateLimit.Check(w, r, route) {
		return true
	}
	writeError(w, http.StatusTooManyRequests, "rate limited")
	return false
}

func (h handlers) upstreamError(w http.ResponseWriter, op string, err error) {
	log.Printf("api %s: %v", op, err)
	writeError(w, http.StatusBadGateway, "connection error")
}

func decode(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = httpx.WriteJSON(w, status, ErrorResponse{Error: message})
}

// lookupStatus mirrors the backend, which answers misses with 404 and a body.
func lookupStatus(hit bool) int {
	if hit {
		return http.StatusOK
	}
	return http.StatusNotFound
}
