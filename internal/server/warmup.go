package server

import (
	"encoding/json"
	"net/http"
)

// warmupHandler runs one strictly sequential invocation: resolve an access
// token (exchanging and persisting the refresh token as needed), then dispatch
// the warmup message. Rotation is persisted before dispatch, so a dispatch
// failure never leaves a rotated token unwritten.
func (s *Server) warmupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	message := s.cfg.WarmupMessage
	if r.Body != nil {
		var req warmupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Message != "" {
			message = req.Message
		}
		r.Body.Close()
	}

	accessToken, rotated, err := s.provider.ResolveAccessToken(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to resolve access token")
		s.writeFailure(w, err.Error())
		return
	}

	reply, err := s.dispatcher.Warmup(r.Context(), accessToken, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("Warmup dispatch failed")
		s.writeFailure(w, err.Error())
		return
	}

	s.logger.Info().
		Bool("token_rotated", rotated).
		Int("reply_length", len(reply)).
		Msg("Warmup completed")

	s.writeJSON(w, http.StatusOK, warmupResponse{
		Success:      true,
		Message:      message,
		ClaudeReply:  reply,
		TokenRotated: rotated,
		Timestamp:    timestamp(),
	})
}
