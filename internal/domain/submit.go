package domain

// SubmitResult is the normalized outcome of a write to the script
// endpoint. Error holds a human-readable string fit for direct display.
type SubmitResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func SubmitOK() SubmitResult {
	return SubmitResult{OK: true}
}

func SubmitFailed(reason string) SubmitResult {
	return SubmitResult{OK: false, Error: reason}
}
