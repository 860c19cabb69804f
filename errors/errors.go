package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status it maps to and the
// message echoed to the client. The wrapped cause is logged server-side only.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code and message so wrapped copies still compare equal to
// their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Message == e.Message
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation creates a 400 error with a client-facing message.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Wrap attaches a cause to a sentinel without mutating it.
func Wrap(base *Error, err error) *Error {
	return New(base.Code, base.Message, err)
}

var (
	ErrUnauthenticated    = New(http.StatusUnauthorized, "Unauthenticated", nil)
	ErrForbidden          = New(http.StatusForbidden, "Forbidden", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrAccountExists      = New(http.StatusConflict, "Account already exists", nil)
	ErrInvalidWebhook     = New(http.StatusBadRequest, "Invalid webhook", nil)
	ErrCheckoutFailed     = New(http.StatusInternalServerError, "Unable to create checkout session", nil)
	ErrInternal           = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrStoreFailure       = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Handle writes err to the response. Unknown error types degrade to a
// generic 500 so internal causes never leak to clients.
func Handle(c *gin.Context, err error) {
	var appErr *Error
	if !stderrors.As(err, &appErr) {
		appErr = Wrap(ErrInternal, err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
