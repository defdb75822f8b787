package supabase

import "errors"

var (
	// ErrRequest is returned when an HTTP request cannot be built or executed.
	ErrRequest = errors.New("supabase.client: request failed")

	// ErrInvalidResponse is returned when PostgREST answers with an
	// unexpected status or an undecodable body.
	ErrInvalidResponse = errors.New("supabase.client: invalid response")
)
