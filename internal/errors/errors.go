// Package errors provides structured error types for aegis.
// Every error carries the operation that failed and a coarse Kind that
// callers branch on, e.g. to pick the notice shown for a failed chat send.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindNetwork
	KindConfig
	KindStatus
	KindAuth
	KindBusy
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindStatus:
		return "unexpected status"
	case KindAuth:
		return "access denied"
	case KindBusy:
		return "busy"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for aegis.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
//   - Op: the operation name
//   - Kind: the error kind
//   - string: context message
//   - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(err error) error {
	return E(Op("config.Validate"), KindInvalid, err)
}

// Catalog errors
func CatalogNotFound(path string) error {
	return E(Op("catalog.Load"), KindNotFound, fmt.Sprintf("catalog file %s not found", path))
}

func CatalogInvalid(reason string) error {
	return E(Op("catalog.Validate"), KindInvalid, reason)
}

func EntryNotFound(id string) error {
	return E(Op("catalog.Lookup"), KindNotFound, fmt.Sprintf("entry %s not found", id))
}

// Chat errors
func ChatStatus(code int, err error) error {
	return E(Op("chat.Stream"), KindStatus, fmt.Sprintf("endpoint returned status %d", code), err)
}

func ChatTransport(err error) error {
	return E(Op("chat.Stream"), KindNetwork, err)
}

func ChatCanceled(err error) error {
	return E(Op("chat.Stream"), KindCanceled, err)
}

// Session errors
func AccessDenied() error {
	return E(Op("session.Login"), KindAuth, "invalid security token")
}
