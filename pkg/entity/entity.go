// Package entity defines the record kinds managed by the admin console.
// Every kind carries a session-stable identifier and exposes its
// searchable fields by name so list controllers can filter without
// knowing the concrete type.
package entity

// Record is the constraint shared by every managed record kind.
type Record interface {
	// EntityID returns the unique identifier of the record.
	EntityID() string
	// Field returns the textual value of a named field, or "" when the
	// kind has no such field.
	Field(name string) string
}

// Merger folds form fields into an existing record, returning the
// updated value. Unknown field names are ignored.
type Merger[T Record] func(T, map[string]string) T
