// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a legitimately empty search: the catalog returned no
// results, or the only candidate was unusable and skipped. It is a normal
// outcome, not a failure, and nothing is persisted when it is returned.
var ErrNotFound = errors.New("no matching book found")

// InputValidationError reports an invalid argument to the pipeline or to a
// read-only query. It is raised synchronously, before any I/O.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
