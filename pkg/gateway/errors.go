package gateway

import "fmt"

// FetchError wraps a failed collection load. Callers keep their prior
// collection and surface the error as a persistent banner.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("gateway: fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed delete, bulk-delete, create, update or
// status-change call. The local collection is left untouched.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("gateway: %s failed: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// apiError is the {message} payload the backend returns on failures.
type apiError struct {
	Message string `json:"message"`
}
