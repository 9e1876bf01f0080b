package server

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"plaza/internal/middleware"
	"plaza/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that a helper already wrote the HTTP response.
// Handlers return nil when they see it.
var errResponseWritten = errors.New("response already written")

// Pagination carries the sanitized limit/offset parsed from the query string.
type Pagination struct {
	Limit  int
	Offset int
}

func parsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}

// parseID extracts a positive integer route parameter. On failure it writes
// a 400 and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		appErr := models.NewValidationError("Invalid " + humanizeParam(param))
		_ = models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam turns a camelCase route parameter name into words,
// e.g. "followerId" -> "follower id".
func humanizeParam(param string) string {
	return strings.ToLower(strings.Join(splitCamel(param), " "))
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// authUserID returns the caller identity placed in Locals by AuthRequired.
func authUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("userID").(uint)
	if !ok || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return 0, errResponseWritten
	}
	return id, nil
}

// mapServiceError translates a service error into the HTTP response.
// Unexpected errors are logged and hidden behind a generic 500.
func mapServiceError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	if status == fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "internal error",
			"path", c.Path(), "error", err.Error())
		return models.RespondWithError(c, status, models.NewInternalError(err))
	}
	return models.RespondWithError(c, status, err)
}
