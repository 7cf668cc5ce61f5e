package bytering

import "fmt"

// ConstructionError wraps a precondition or allocation failure raised while
// building a Ring. Per spec, these are fatal programming errors with no
// recovery path; New returns one instead of panicking directly so tests
// and careful callers can still observe it, while MustNew turns it back
// into a panic for callers that want the usual fail-fast behavior.
type ConstructionError struct {
	cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("bytering: construction failed: %v", e.cause)
}

func (e *ConstructionError) Unwrap() error {
	return e.cause
}
