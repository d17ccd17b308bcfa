package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API clients.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeAccessDenied      = "ACCESS_DENIED"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeValidation        = "VALIDATION_ERROR"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeUnauthorized      = "UNAUTHORIZED"
)

// DomainError carries a machine-distinguishable code alongside the
// human-readable message returned to the client.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func ErrNotFound(what string) *DomainError {
	return NewDomainError(CodeNotFound, what+" not found")
}

func ErrProductNotFound(id string) *DomainError {
	return NewDomainError(CodeNotFound, "Product not found: "+id)
}

func ErrInsufficientStock(productName, size string) *DomainError {
	return NewDomainError(CodeInsufficientStock,
		fmt.Sprintf("Insufficient stock for %s in size %s", productName, size))
}

func ErrAccessDenied() *DomainError {
	return NewDomainError(CodeAccessDenied, "Access denied")
}

func ErrInvalidTransition(message string) *DomainError {
	return NewDomainError(CodeInvalidTransition, message)
}

func ErrValidation(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

func ErrAlreadyExists(message string) *DomainError {
	return NewDomainError(CodeAlreadyExists, message)
}

func ErrUnauthorized(message string) *DomainError {
	return NewDomainError(CodeUnauthorized, message)
}

// CodeOf returns the error's domain code, or empty for non-domain errors.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
