// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gutendex

import "fmt"

// TransportError reports a failed exchange with the catalog API: a
// connection error, a timeout, or a non-200 status. Status is zero when
// no response was received.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog request %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("catalog request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded into the
// expected search response shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decoding catalog response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
