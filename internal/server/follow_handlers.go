package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser creates a follow edge on behalf of the authenticated follower
func (s *Server) FollowUser(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	followerID, err := parseID(c, "followerId")
	if err != nil {
		return nil
	}
	followedID, err := parseID(c, "followedId")
	if err != nil {
		return nil
	}

	if err := s.followService.Follow(c.UserContext(), callerID, followerID, followedID); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Now following",
	})
}

// UnfollowUser removes a follow edge. Removing an absent edge succeeds.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	callerID, err := authUserID(c)
	if err != nil {
		return nil
	}
	followerID, err := parseID(c, "followerId")
	if err != nil {
		return nil
	}
	followedID, err := parseID(c, "followedId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.UserContext(), callerID, followerID, followedID); err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Unfollowed",
	})
}

// GetFollowers lists the users following the given user
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.FollowersOf(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(followers)
}

// GetFollowing lists the users the given user follows
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.FollowingOf(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(following)
}
