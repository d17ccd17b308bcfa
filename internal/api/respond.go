package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
)

var statusByCode = map[string]int{
	domain.CodeNotFound:          http.StatusNotFound,
	domain.CodeInsufficientStock: http.StatusBadRequest,
	domain.CodeValidation:        http.StatusBadRequest,
	domain.CodeInvalidTransition: http.StatusBadRequest,
	domain.CodeAlreadyExists:     http.StatusBadRequest,
	domain.CodeAccessDenied:      http.StatusForbidden,
	domain.CodeUnauthorized:      http.StatusUnauthorized,
}

// fail maps a domain error to its HTTP status and the `{message}` body
// the storefront expects. Non-domain errors become an opaque 500.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if code := domain.CodeOf(err); code != "" {
		c.JSON(statusByCode[code], gin.H{"message": err.Error()})
		return
	}
	log.Error("request failed",
		zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// pageParams reads the 1-based `page` and `limit` query params, falling
// back to the route's default page size. The services clamp further.
func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	pages := (total + int64(limit) - 1) / int64(limit)
	if pages < 1 {
		pages = 1
	}
	return pages
}
