package server

import (
	"net/http"

	"github.com/todozi/tdz-gateway/internal/binary"
)

// RegisterAPIKeyRequest is the body of POST /api/register.
type RegisterAPIKeyRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// CheckAPIKeyRequest is the body of POST /api/check.
type CheckAPIKeyRequest struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
}

// registerAPIKey handles POST /api/register. The token gate skips this
// route so new clients can obtain a key.
func (s *Server) registerAPIKey(w http.ResponseWriter, r *http.Request) {
	var req RegisterAPIKeyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("api", "register").Flag("user-id", req.UserID)
	s.runCreated(w, r, http.StatusCreated, "API key registered", args)
}

// checkAPIKey handles POST /api/check
func (s *Server) checkAPIKey(w http.ResponseWriter, r *http.Request) {
	var req CheckAPIKeyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	args := binary.Command("api", "check").
		Pos(req.PublicKey).
		Flag("private-key", req.PrivateKey)

	s.run(w, r, http.StatusOK, "result", "", args)
}
