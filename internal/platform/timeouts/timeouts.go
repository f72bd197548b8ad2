// Package timeouts defines shared timeout constants used by the web service.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SealAPI caps a single round trip to the seal backend.
const SealAPI = 10 * time.Second

// MockLatency is the simulated delay of the local mock backend.
const MockLatency = 800 * time.Millisecond
