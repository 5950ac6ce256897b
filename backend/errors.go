package backend

import (
	"errors"
	"fmt"
)

// Kind tags a client error with its category. The category is decided once,
// at the client boundary, and propagated as a typed value so callers never
// have to inspect raw responses.
type Kind int

const (
	// KindRemote is a backend 4xx/5xx other than the auth statuses below.
	KindRemote Kind = iota
	// KindNetwork means no response was received at all.
	KindNetwork
	// KindAuthentication is a 401: token missing, invalid or expired.
	KindAuthentication
	// KindAuthorization is a 403: authenticated but not allowed.
	KindAuthorization
	// KindValidation is a 422: the backend rejected the payload fields.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindRemote:
		return "remote"
	case KindNetwork:
		return "network"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is the tagged error variant returned by every client call.
type Error struct {
	Kind   Kind
	Status int // HTTP status, 0 for network errors
	Detail string
	err    error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend %s error: %s", e.Kind, e.Detail)
	}
	if e.err != nil {
		return fmt.Sprintf("backend %s error: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("backend %s error (status %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the kind of a client error, or false when err did not come
// from the client boundary.
func KindOf(err error) (Kind, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}

// IsAuthentication reports whether err is a backend authentication failure.
func IsAuthentication(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindAuthentication
}
