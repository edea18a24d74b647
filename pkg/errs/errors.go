package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrMissingToken   = errors.New("Missing required parameters")
	ErrUnauthorized   = errors.New("Unauthorized access")
	ErrNotFound       = errors.New("Resource not found")

	// ErrPersistence means the authoritative relational write failed; the
	// document store was never touched.
	ErrPersistence = errors.New("Failed to persist the record")

	// ErrPartialWrite means the relational mutation committed but the
	// document-store mirror failed, so the two stores have diverged. The
	// relational change is durable and is not rolled back.
	ErrPartialWrite = errors.New("Primary store change committed, but the catalog copy is stale")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrMissingToken:   ErrStatusClient,
	ErrUnauthorized:   ErrStatusNoPermission,
	ErrNotFound:       ErrStatusNotFound,
	ErrPersistence:    ErrStatusInternalServer,
	ErrPartialWrite:   ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
