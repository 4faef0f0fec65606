package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain outcome. The HTTP layer is the only place that
// turns a Kind into a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalid
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalid, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Internal wraps a store, mail or signing failure. The wrapped detail is
// logged by the HTTP layer and never written to a response body.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err, treating anything untyped as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Credential store outcomes.
var (
	ErrEmailTaken         = New(KindConflict, "User already exists")
	ErrAlreadyVerified    = New(KindConflict, "User already verified")
	ErrAccountNotFound    = New(KindInvalid, "User not found")
	ErrAccountNotExist    = New(KindInvalid, "User does not exist")
	ErrInvalidOTP         = New(KindInvalid, "Invalid or expired OTP")
	ErrInvalidResetOTP    = New(KindInvalid, "Invalid OTP or expired")
	ErrInvalidCredentials = New(KindInvalid, "Invalid credentials")
	ErrNotVerified        = New(KindInvalid, "Please verify your email to log in")
	ErrUserNotFound       = New(KindNotFound, "User not found")
	ErrNameRequired       = New(KindValidation, "Name is required")
)

// Token outcomes.
var (
	ErrNoToken            = New(KindUnauthenticated, "No token provided, authorization denied")
	ErrInvalidToken       = New(KindUnauthenticated, "Token is not valid")
	ErrUnauthorizedAccess = New(KindUnauthenticated, "Unauthorized access, invalid token")
)

// Room registry outcomes.
var (
	ErrRoomNotFound       = New(KindNotFound, "Room not found")
	ErrNotRoomHost        = New(KindForbidden, "Unauthorized")
	ErrInviteForbidden    = New(KindForbidden, "You are not authorized to invite users")
	ErrModerateForbidden  = New(KindForbidden, "You are not authorized to assign moderators")
	ErrAlreadyMember      = New(KindConflict, "Already a participant")
	ErrStartSessionDenied = New(KindForbidden, "Unauthorized to start session")
	ErrEndSessionDenied   = New(KindForbidden, "Unauthorized to end session")
	ErrSessionNotFound    = New(KindNotFound, "Session not found")
	ErrRecordingNotFound  = New(KindNotFound, "No recording available for this session")
	ErrInvalidSessionID   = New(KindValidation, "Invalid session id")
	ErrInvalidUserID      = New(KindValidation, "Invalid user id")
	ErrContentRequired    = New(KindValidation, "Content is required")
)
