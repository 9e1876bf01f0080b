package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/list", func(c *fiber.Ctx) error {
		got = parsePagination(c, 20, 100)
		return c.SendStatus(http.StatusOK)
	})

	tests := []struct {
		name   string
		query  string
		limit  int
		offset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "?limit=50&offset=10", 50, 10},
		{"limit over max falls back to default", "?limit=1000", 20, 0},
		{"negative values fall back", "?limit=-5&offset=-3", 20, 0},
		{"non numeric falls back", "?limit=abc", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/list"+tt.query, nil))
			_ = resp.Body.Close()
			assert.Equal(t, tt.limit, got.Limit)
			assert.Equal(t, tt.offset, got.Offset)
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	app.Get("/item/:itemId", func(c *fiber.Ctx) error {
		id, err := parseID(c, "itemId")
		if err != nil {
			return nil
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name           string
		param          string
		expectedStatus int
	}{
		{"valid", "42", http.StatusOK},
		{"zero", "0", http.StatusBadRequest},
		{"negative", "-1", http.StatusBadRequest},
		{"non numeric", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/item/"+tt.param, nil))
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "follower id", humanizeParam("followerId"))
	assert.Equal(t, "id", humanizeParam("id"))
	assert.Equal(t, "pub id", humanizeParam("pubId"))
}
