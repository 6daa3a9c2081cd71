package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError signals malformed or missing required input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ConflictError signals a uniqueness violation (duplicate email, slot taken).
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// UnauthorizedError signals a failed credential check.
type UnauthorizedError struct {
	Reason string
}

func (e UnauthorizedError) Error() string {
	return e.Reason
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// RespondError maps a service error onto the HTTP taxonomy: validation and
// conflicts surface as 400 (conflicts kept at 400 to match the original API),
// auth failures as 401, missing entities as 404, anything else as a generic
// 500 with the detail logged server-side only.
func RespondError(c *gin.Context, err error) {
	var (
		notFound     NotFoundError
		validation   ValidationError
		conflict     ConflictError
		unauthorized UnauthorizedError
	)
	switch {
	case errors.As(err, &notFound):
		JSONError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		JSONError(c, http.StatusBadRequest, validation.Error())
	case errors.As(err, &conflict):
		JSONError(c, http.StatusBadRequest, conflict.Error())
	case errors.As(err, &unauthorized):
		JSONError(c, http.StatusUnauthorized, unauthorized.Error())
	default:
		GetLogger().Error("Internal failure", zap.Error(err))
		JSONError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
