package domain

// Identity is the trusted subject resolved from a bearer credential.
// It lives for a single request and is never persisted.
type Identity struct {
	SubjectID string
}
