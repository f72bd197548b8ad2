package sealbar

import (
	"net/http"

	"github.com/louisbranch/crypto-seal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SealBar+"{$}", h.handleFragment)
	mux.HandleFunc(http.MethodPost+" "+routepath.SealBarTab, h.handleTab)
	mux.HandleFunc(http.MethodPost+" "+routepath.SealBarInput, h.handleInput)
	mux.HandleFunc(http.MethodPost+" "+routepath.SealBarSubmit, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.SealBarCopy, h.handleCopy)
	mux.HandleFunc(http.MethodGet+" "+routepath.SealBarQR, h.handleQR)
}
