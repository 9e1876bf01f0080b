package service

import (
	"context"

	"plaza/internal/cache"
	"plaza/internal/models"
	"plaza/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates the edge follower -> followed. Only the follower themself
// may create it. Duplicate edges are rejected by the storage layer's unique
// index, so concurrent follow requests cannot both succeed.
func (s *FollowService) Follow(ctx context.Context, callerID, followerID, followedID uint) error {
	if callerID != followerID {
		return models.NewForbiddenError("You can only follow on your own behalf")
	}
	if followerID == followedID {
		return models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followerID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, &models.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}); err != nil {
		return err
	}

	// The follower's own cached feed is a single key, so a follow change
	// refreshes it immediately instead of waiting out the TTL.
	cache.InvalidateFeed(ctx, followerID)
	return nil
}

// Unfollow removes the edge. Removing an edge that does not exist is not an
// error, so the operation is idempotent.
func (s *FollowService) Unfollow(ctx context.Context, callerID, followerID, followedID uint) error {
	if callerID != followerID {
		return models.NewForbiddenError("You can only unfollow on your own behalf")
	}
	if err := s.followRepo.Delete(ctx, followerID, followedID); err != nil {
		return err
	}

	cache.InvalidateFeed(ctx, followerID)
	return nil
}

func (s *FollowService) FollowersOf(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID)
}

func (s *FollowService) FollowingOf(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID)
}
