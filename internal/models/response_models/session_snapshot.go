package response_models

// SessionSnapshot is the externally visible state of the application shell.
type SessionSnapshot struct {
	State          string          `json:"state"`
	Sequence       uint64          `json:"sequence"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	FailureNotice  string          `json:"failure_notice,omitempty"`
}
