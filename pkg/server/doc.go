// Package server exposes a lexicon over HTTP.
//
// # Routes
//
//	GET  /healthz                  liveness and build version
//	GET  /v1/nouns/{noun}          synsets containing noun
//	GET  /v1/distance?a=..&b=..    semantic distance
//	GET  /v1/sca?a=..&b=..         shortest common ancestor synset
//	POST /v1/outcast               {"nouns": [...]} -> outcast and scores
//	GET  /metrics                  Prometheus metrics, when configured
//
// # Errors
//
// Failures are JSON objects {"code": ..., "message": ...}. The status
// follows the error code: NULL_INPUT, EMPTY_INPUT and INVALID_INPUT are
// 400, NOT_A_NOUN is 404, everything else is 500.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. An incoming X-Request-ID
// is echoed; otherwise a random UUID is generated. The id appears in the
// request log line.
package server
