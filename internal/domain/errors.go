package domain

import "errors"

// Error kinds. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicated   = errors.New("duplicated")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a domain failure with a client-facing message. It unwraps to its Kind,
// so errors.Is(err, ErrNotFound) holds for every not-found Error value.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError returns an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// User directory errors.
var (
	ErrUserNotFound       = NewError(ErrNotFound, "user not found")
	ErrUserDuplicated     = NewError(ErrDuplicated, "user already exists")
	ErrInvalidCredentials = NewError(ErrUnauthorized, "invalid credentials")
	ErrInvalidRefresh     = NewError(ErrUnauthorized, "invalid refresh token")
)

// Dance errors.
var (
	ErrDanceNotFound              = NewError(ErrNotFound, "dance not found")
	ErrDanceInvalidTime           = NewError(ErrBadRequest, "invalid time")
	ErrDanceInvalidMusic          = NewError(ErrBadRequest, "invalid music")
	ErrDanceInvalidProgressType   = NewError(ErrBadRequest, "invalid progress type")
	ErrDanceUpdateForbidden       = NewError(ErrForbidden, "update forbidden")
	ErrDanceDeleteForbidden       = NewError(ErrForbidden, "delete forbidden")
	ErrReservationImpossible      = NewError(ErrDuplicated, "reservation impossible")
	ErrReservationDuplicated      = NewError(ErrDuplicated, "already reserved")
	ErrReservationNotFound        = NewError(ErrNotFound, "reservation not found")
	ErrReservationDeleteForbidden = NewError(ErrForbidden, "reservation delete forbidden")
	ErrAttendDuplicated           = NewError(ErrDuplicated, "attend duplicated")
)

// Music errors.
var (
	ErrMusicNotFound      = NewError(ErrNotFound, "music not found")
	ErrMusicApplyNotFound = NewError(ErrNotFound, "music apply not found")
	ErrMusicInUse         = NewError(ErrDuplicated, "music in use")
)

// Board errors.
var (
	ErrBoardNotFound        = NewError(ErrNotFound, "board not found")
	ErrBoardDeleteForbidden = NewError(ErrForbidden, "board delete forbidden")
	ErrInvalidBoardType     = NewError(ErrBadRequest, "invalid board type")
)

// Rank errors.
var (
	ErrUnauthorizedUserAccess = NewError(ErrForbidden, "unauthorized user access")
	ErrPointPolicyNotFound    = NewError(ErrNotFound, "point policy not found")
)
