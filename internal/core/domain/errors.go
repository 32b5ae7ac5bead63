package domain

import (
	"errors"
	"strings"
)

// Kind enumerates authentication and authorization failures.
type Kind int

const (
	KindMissingCredential Kind = iota + 1
	KindMalformedCredential
	KindExpiredCredential
	KindAccountNotFound
	KindInsufficientRole
	KindResourceNotFound
	KindNotOwner
	KindInvalidResourceReference
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "MissingCredential"
	case KindMalformedCredential:
		return "MalformedCredential"
	case KindExpiredCredential:
		return "ExpiredCredential"
	case KindAccountNotFound:
		return "AccountNotFound"
	case KindInsufficientRole:
		return "InsufficientRole"
	case KindResourceNotFound:
		return "ResourceNotFound"
	case KindNotOwner:
		return "NotOwner"
	case KindInvalidResourceReference:
		return "InvalidResourceReference"
	default:
		return "Unknown"
	}
}

// AuthError is a pipeline rejection. Two AuthErrors match under errors.Is
// when their kinds are equal.
type AuthError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool {
	var t *AuthError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Reject builds an AuthError of the given kind.
func Reject(kind Kind, message string, cause error) *AuthError {
	return &AuthError{Kind: kind, Message: message, Err: cause}
}

var (
	ErrMissingCredential        = &AuthError{Kind: KindMissingCredential, Message: "no credential provided"}
	ErrMalformedCredential      = &AuthError{Kind: KindMalformedCredential, Message: "invalid credential"}
	ErrExpiredCredential        = &AuthError{Kind: KindExpiredCredential, Message: "credential expired"}
	ErrAccountNotResolved       = &AuthError{Kind: KindAccountNotFound, Message: "invalid session"}
	ErrInsufficientRole         = &AuthError{Kind: KindInsufficientRole, Message: "insufficient permissions"}
	ErrResourceNotFound         = &AuthError{Kind: KindResourceNotFound, Message: "resource not found"}
	ErrNotOwner                 = &AuthError{Kind: KindNotOwner, Message: "you can only access your own resources"}
	ErrInvalidResourceReference = &AuthError{Kind: KindInvalidResourceReference, Message: "invalid resource reference"}
)

// KindOf returns the kind of the first AuthError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("resource conflict")
)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Invalid builds a ValidationError from field messages.
func Invalid(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
