package server

import (
	"plaza/internal/models"
	"plaza/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPublicationRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

type editPublicationRequest struct {
	Text string `json:"text"`
}

// GetPublications returns the global timeline, newest first
func (s *Server) GetPublications(c *fiber.Ctx) error {
	page := parsePagination(c, 20, 100)

	publications, err := s.pubService.ListAll(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(publications)
}

// GetPublication returns a single publication by ID. Public.
func (s *Server) GetPublication(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	publication, err := s.pubService.GetByID(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(publication)
}

// GetUserPublications lists a user's own publications, newest first. Public.
func (s *Server) GetUserPublications(c *fiber.Ctx) error {
	authorID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	publications, err := s.pubService.ListByAuthor(c.UserContext(), authorID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(publications)
}

// GetUserFeed returns publications by everyone the user follows
func (s *Server) GetUserFeed(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	feed, err := s.pubService.FeedFor(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(feed)
}

// CreatePublication publishes a new post for the authenticated author
func (s *Server) CreatePublication(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	authorID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req createPublicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	publication, err := s.pubService.Create(c.UserContext(), service.CreatePublicationInput{
		CallerID: callerID,
		AuthorID: authorID,
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(publication)
}

// EditPublication replaces the text of the caller's own publication
func (s *Server) EditPublication(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	authorID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	pubID, err := parseID(c, "pubId")
	if err != nil {
		return nil
	}

	var req editPublicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	publication, err := s.pubService.Edit(c.UserContext(), service.EditPublicationInput{
		CallerID:      callerID,
		AuthorID:      authorID,
		PublicationID: pubID,
		Text:          req.Text,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(publication)
}

// DeletePublication removes the caller's own publication and its comments
func (s *Server) DeletePublication(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	authorID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	pubID, err := parseID(c, "pubId")
	if err != nil {
		return nil
	}

	if err := s.pubService.Delete(c.UserContext(), callerID, authorID, pubID); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Publication deleted",
	})
}
