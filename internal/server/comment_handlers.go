package server

import (
	"plaza/internal/models"
	"plaza/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Text string `json:"text"`
}

// CreateComment attaches a comment to a publication on behalf of the
// authenticated author
func (s *Server) CreateComment(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	pubID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	authorID, err := parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Add(c.UserContext(), service.AddCommentInput{
		CallerID:      callerID,
		AuthorID:      authorID,
		PublicationID: pubID,
		Text:          req.Text,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetPublicationComments lists a publication's comments, oldest first. Public.
func (s *Server) GetPublicationComments(c *fiber.Ctx) error {
	pubID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByPublication(c.UserContext(), pubID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}
