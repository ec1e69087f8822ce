package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the error envelope every failing route uses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRelay wraps the binary's raw stdout under the route's envelope
// key. The output is deliberately not parsed; routes relay text.
func writeRelay(w http.ResponseWriter, status int, key, stdout string) {
	writeJSON(w, status, map[string]string{key: strings.TrimSpace(stdout)})
}

// writeCreated is writeRelay for creation routes that pair a fixed
// message with the result text.
func writeCreated(w http.ResponseWriter, status int, message, stdout string) {
	writeJSON(w, status, map[string]string{
		"message": message,
		"result":  strings.TrimSpace(stdout),
	})
}

// notFoundMarker is the text the binary emits when an entity is absent.
const notFoundMarker = "not found"

// writeExecError maps an execution failure onto a status code: the
// not-found marker in the failure text produces a 404 with notFoundMsg
// (timeouts included under 500 like every other failure).
func writeExecError(w http.ResponseWriter, err error, notFoundMsg string) {
	msg := err.Error()
	if strings.Contains(strings.ToLower(msg), notFoundMarker) {
		if notFoundMsg == "" {
			notFoundMsg = msg
		}
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	writeError(w, http.StatusInternalServerError, msg)
}

// decodeBody decodes a JSON request body into dst. An empty body is
// tolerated: most routes treat every field as optional.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// run invokes the binary and relays stdout under key, with the
// not-found mapping applied on failure.
func (s *Server) run(w http.ResponseWriter, r *http.Request, status int, key, notFoundMsg string, args *binary.Args) {
	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, notFoundMsg)
		return
	}
	writeRelay(w, status, key, out)
}

// runCreated invokes the binary for a creation route, answering with
// the route's fixed message plus the raw result.
func (s *Server) runCreated(w http.ResponseWriter, r *http.Request, status int, message string, args *binary.Args) {
	out, err := s.runner.Run(r.Context(), args.Argv()...)
	if err != nil {
		writeExecError(w, err, "")
		return
	}
	writeCreated(w, status, message, out)
}
