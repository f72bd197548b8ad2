package sealmock

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
	"github.com/louisbranch/crypto-seal/internal/services/web/platform/httpx"
)

const maxBodyBytes = 1 << 20

// NewHandler serves backend over the seal wire contract. Misses on verify and
// resolve answer 404 with the normal response body.
func NewHandler(backend *Backend) http.Handler {
	if backend == nil {
		backend = New()
	}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" /seal", func(w http.ResponseWriter, r *http.Request) {
		var req sealapi.SealRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := backend.Seal(r.Context(), req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
	mux.HandleFunc(http.MethodPost+" /verify", func(w http.ResponseWriter, r *http.Request) {
		var req sealapi.SealRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := backend.Verify(r.Context(), req.Text)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, lookupStatus(resp.Valid), resp)
	})
	mux.HandleFunc(http.MethodPost+" /resolve", func(w http.ResponseWriter, r *http.Request) {
		var req sealapi.ResolveRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := backend.Resolve(r.Context(), req.Hash)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, lookupStatus(resp.Found), resp)
	})
	mux.HandleFunc(http.MethodGet+" /list", func(w http.ResponseWriter, r *http.Request) {
		resp, err := backend.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	})
	return mux
}

func decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return false
	}
	return true
}

func lookupStatus(hit bool) int {
	if hit {
		return http.StatusOK
	}
	return http.StatusNotFound
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmptyInput) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if err := httpx.WriteJSON(w, status, payload); err != nil {
		log.Printf("sealmock: encode response: %v", err)
	}
}
