package server

import (
	"plaza/internal/models"
	"plaza/internal/service"

	"github.com/gofiber/fiber/v2"
)

type editDetailsRequest struct {
	NewDescription *string `json:"newDescription"`
	NewEmail       *string `json:"newEmail"`
}

// GetAllUsers returns every registered account, paginated
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 50, 200)

	users, err := s.userService.ListAll(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// GetMyProfile returns the account of the authenticated caller
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.UserContext(), callerID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetUserProfile returns an account by numeric ID
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// GetProfileByUsername returns an account by username. Public.
func (s *Server) GetProfileByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	user, err := s.userService.GetByUsername(c.UserContext(), username)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// EditUserDetails applies a partial update to the caller's own account and
// echoes back the fields that changed
func (s *Server) EditUserDetails(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req editDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.NewDescription == nil && req.NewEmail == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Nothing to update"))
	}

	changed, err := s.userService.EditDetails(c.UserContext(), service.EditDetailsInput{
		CallerID:       callerID,
		UserID:         userID,
		NewDescription: req.NewDescription,
		NewEmail:       req.NewEmail,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(changed)
}
