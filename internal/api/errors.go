package api

import "fmt"

// ErrorKind classifies a transport failure.
type ErrorKind int

const (
	// ErrKindRequest means the request could not be built or encoded;
	// the server was never contacted.
	ErrKindRequest ErrorKind = iota
	// ErrKindNetwork means no response was received.
	ErrKindNetwork
	// ErrKindServer means the server answered with an error status.
	ErrKindServer
)

// String returns a short label for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindRequest:
		return "request"
	case ErrKindNetwork:
		return "network"
	case ErrKindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error describes a failed call to the remote service. Status and Body
// are only set for ErrKindServer.
type Error struct {
	Kind   ErrorKind
	Op     string // "login", "create recipe", ...
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrKindServer:
		return fmt.Sprintf("api: %s: server returned %d: %s", e.Op, e.Status, e.Body)
	case ErrKindNetwork:
		return fmt.Sprintf("api: %s: no response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }
