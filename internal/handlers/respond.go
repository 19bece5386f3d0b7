package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"go.uber.org/zap"
)

// respondError maps a use-case failure to an HTTP status. Domain errors carry
// their message to the client; anything else is logged and reported as a
// generic 500 so internals never leak.
func respondError(ctx *gin.Context, logger *zap.Logger, err error) {
	var domainErr *domain.Error

	if errors.As(err, &domainErr) {
		var status int

		switch domainErr.Kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindForbidden:
			status = http.StatusForbidden
		case domain.KindUnauthorized:
			status = http.StatusUnauthorized
		case domain.KindInternal:
			status = http.StatusInternalServerError
		default:
			status = http.StatusInternalServerError
		}

		ctx.JSON(status, gin.H{"error": domainErr.Message})
		return
	}

	logger.Error("unclassified failure",
		zap.Error(err),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
	)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		return 0, domain.NewValidationError("Invalid id parameter")
	}

	return uint(id), nil
}
