package domain

import "errors"

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindStorage       ErrorKind = "storage"
)

// Error carries the failure category alongside the user-facing message so that
// callers can branch on the kind without parsing message text.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
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

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewStorageError(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or "" when the
// error does not originate from the domain layer.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

var (
	ErrAuthRequired    = &Error{Kind: KindAuthorization, Message: "bu işlem için giriş yapmalısınız"}
	ErrNotOwner        = &Error{Kind: KindAuthorization, Message: "bu ilan üzerinde yetkiniz yok"}
	ErrUserNotFound    = &Error{Kind: KindNotFound, Message: "kullanıcı bulunamadı"}
	ErrListingNotFound = &Error{Kind: KindNotFound, Message: "ilan bulunamadı"}
	ErrWrongPassword   = &Error{Kind: KindValidation, Message: "şifre hatalı"}
	ErrEmailTaken      = &Error{Kind: KindConflict, Message: "bu e-posta adresi zaten kayıtlı"}
	ErrAlreadyReviewed = &Error{Kind: KindConflict, Message: "bu ilanı zaten değerlendirdiniz"}
)
