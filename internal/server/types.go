package server

// warmupRequest is the optional trigger body. Message overrides the configured
// warmup text.
type warmupRequest struct {
	Message string `json:"message"`
}

type warmupResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ClaudeReply  string `json:"claudeReply"`
	TokenRotated bool   `json:"tokenRotated"`
	Timestamp    string `json:"timestamp"`
}

type failureResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// unauthorizedResponse intentionally has no success field; the trigger
// interface documents the 401 shape as a bare error object.
type unauthorizedResponse struct {
	Error string `json:"error"`
}
