// Package server exposes the layout pipeline and the selection engine
// over HTTP for hosts that run the map out of process.
//
// # Endpoints
//
//	GET  /healthz               liveness
//	POST /v1/layout             document + options → layout JSON
//	POST /v1/render/{format}    document + options → raw artifact
//	POST /v1/hits               document + base or range → features
//	POST /v1/selection          document + selection + keys → selection
//
// Every POST body carries the document in the import format of
// [io.ReadJSON] under "document". The server keeps no session state:
// the selection endpoint replays the given key presses on a fresh
// engine and returns the result.
//
// Errors are JSON objects {"error": {"code": ..., "message": ...}} whose
// code is a [errors.Code].
//
// [io.ReadJSON]: github.com/matzehuels/seqmap/pkg/io.ReadJSON
// [errors.Code]: github.com/matzehuels/seqmap/pkg/errors.Code
package server
