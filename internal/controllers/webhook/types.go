package webhook

const (
	StatusOK      = "ok"
	StatusIgnored = "ignored"
)

// StatusResponse is returned after an update has been handled.
type StatusResponse struct {
	// Status is "ok" when a reply was sent and "ignored" when the update carried no message.
	Status string `json:"status"`
}

// LivenessResponse is returned by the liveness check.
type LivenessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
