// Package response renders the standardized JSON envelopes and maps the
// errs taxonomy to HTTP status codes.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adoteumpet/service-adoption/internal/errs"
)

// Success writes a 200 response with the given body.
func Success(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 response with a message and the created entity.
func Created(c *gin.Context, message string, key string, entity any) {
	c.JSON(http.StatusCreated, gin.H{"message": message, key: entity})
}

// BadRequest writes a 400 response with the standard error envelope.
func BadRequest(c *gin.Context, label, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": label, "message": message})
}

// Error maps an error from the service layer to the standardized error
// envelope. Unknown errors become 500; their detail is only exposed while
// gin runs in debug mode.
func Error(c *gin.Context, err error) {
	var (
		notFound   *errs.NotFoundError
		validation *errs.ValidationError
		conflict   *errs.ConflictError
		badGateway *errs.BadGatewayError
		timeout    *errs.GatewayTimeoutError
		configErr  *errs.ConfigurationError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   notFound.Label(),
			"message": notFound.Error(),
		})
	case errors.As(err, &validation):
		body := gin.H{"error": "Invalid data", "message": validation.Message}
		if len(validation.Details) > 0 {
			body["details"] = validation.Details
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Duplicate record",
			"message": conflict.Message,
		})
	case errors.As(err, &timeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error":   "Upstream API timeout",
			"message": timeout.Message,
		})
	case errors.As(err, &badGateway):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Upstream API error",
			"message": badGateway.Error(),
			"details": badGateway.UpstreamBody,
		})
	case errors.As(err, &configErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "API configuration missing",
			"message": configErr.Message,
		})
	default:
		message := "an unexpected error occurred"
		if gin.IsDebugging() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": message,
		})
	}
}
