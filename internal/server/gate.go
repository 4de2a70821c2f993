package server

import "net/http"

// gateMiddleware authenticates the invocation itself before any credential
// work happens: the trigger must present 'Authorization: Bearer <secret>'
// matching the configured shared secret exactly. Rejections perform no store
// or network access and carry no further detail.
func (s *Server) gateMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.WarmupSecret == "" {
			s.logger.Error().Msg("WARMUP_SECRET environment variable not set")
			s.writeJSON(w, http.StatusUnauthorized, unauthorizedResponse{Error: "Unauthorized"})
			return
		}

		if r.Header.Get("Authorization") != "Bearer "+s.cfg.WarmupSecret {
			s.logger.Warn().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("remote_addr", r.RemoteAddr).
				Msg("Rejected warmup trigger with bad or missing secret")
			s.writeJSON(w, http.StatusUnauthorized, unauthorizedResponse{Error: "Unauthorized"})
			return
		}

		next(w, r)
	}
}
