package commands

import "fmt"

// RejectionClass buckets a validation rejection for transport mapping.
type RejectionClass string

const (
	// ClassInvalidInput rejects malformed requests before any store fetch.
	ClassInvalidInput RejectionClass = "invalid_input"
	// ClassNotFound rejects references to records that do not exist.
	ClassNotFound RejectionClass = "not_found"
	// ClassForbidden rejects actors outside the booking's participants.
	ClassForbidden RejectionClass = "forbidden"
	// ClassConflict rejects violations of a business rule against existing
	// state (capacity, species, overlap, duplicate review, self-review).
	ClassConflict RejectionClass = "conflict"
)

// Rejection is a terminal validation verdict: the candidate is invalid and
// Reason names the first rule it broke. A nil *Rejection means accepted.
// Rejections are values, not errors. Store failures travel separately so
// "store unreachable" can never masquerade as "booking invalid".
type Rejection struct {
	Class  RejectionClass
	Reason string
}

func reject(class RejectionClass, format string, args ...any) *Rejection {
	return &Rejection{Class: class, Reason: fmt.Sprintf(format, args...)}
}
