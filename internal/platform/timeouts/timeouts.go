// Package timeouts defines shared timeout constants used across the site.
// Centralizing these values keeps the durations discoverable and prevents
// drift between the server and its handlers.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContentLoad caps the wait for a translation document lookup. Lookups are
// in-memory so this only matters when a handler context is already near its
// deadline.
const ContentLoad = 2 * time.Second

// StoreWrite caps the time allowed for a single submission insert.
const StoreWrite = 2 * time.Second
