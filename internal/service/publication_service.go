package service

import (
	"context"

	"plaza/internal/cache"
	"plaza/internal/models"
	"plaza/internal/repository"
)

const maxPublicationLen = 10000

type PublicationService struct {
	pubRepo    repository.PublicationRepository
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type CreatePublicationInput struct {
	CallerID uint
	AuthorID uint
	Text     string
	ImageURL string
}

type EditPublicationInput struct {
	CallerID      uint
	AuthorID      uint
	PublicationID uint
	Text          string
}

func NewPublicationService(
	pubRepo repository.PublicationRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *PublicationService {
	return &PublicationService{pubRepo: pubRepo, followRepo: followRepo, userRepo: userRepo}
}

func (s *PublicationService) Create(ctx context.Context, in CreatePublicationInput) (*models.Publication, error) {
	if in.CallerID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only publish on your own behalf")
	}
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPublicationLen {
		return nil, models.NewValidationError("Publication too long (max 10000 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}

	publication := &models.Publication{
		AuthorID: in.AuthorID,
		Text:     in.Text,
		ImageURL: in.ImageURL,
	}
	if err := s.pubRepo.Create(ctx, publication); err != nil {
		return nil, err
	}

	return s.pubRepo.GetByID(ctx, publication.ID)
}

// Edit updates the text and the edition timestamp; the creation timestamp
// is never touched.
func (s *PublicationService) Edit(ctx context.Context, in EditPublicationInput) (*models.Publication, error) {
	if in.CallerID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only edit your own publications")
	}
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}

	publication, err := s.pubRepo.GetByID(ctx, in.PublicationID)
	if err != nil {
		return nil, err
	}
	if publication.AuthorID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only edit your own publications")
	}

	publication.Text = in.Text
	if err := s.pubRepo.Update(ctx, publication); err != nil {
		return nil, err
	}

	return s.pubRepo.GetByID(ctx, publication.ID)
}

// Delete removes the publication and cascades to its comments.
func (s *PublicationService) Delete(ctx context.Context, callerID, authorID, publicationID uint) error {
	if callerID != authorID {
		return models.NewForbiddenError("You can only delete your own publications")
	}

	publication, err := s.pubRepo.GetByID(ctx, publicationID)
	if err != nil {
		return err
	}
	if publication.AuthorID != authorID {
		return models.NewForbiddenError("You can only delete your own publications")
	}

	return s.pubRepo.DeleteWithComments(ctx, publicationID)
}

func (s *PublicationService) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	return s.pubRepo.GetByID(ctx, id)
}

func (s *PublicationService) ListAll(ctx context.Context, limit, offset int) ([]models.Publication, error) {
	return s.pubRepo.ListAll(ctx, limit, offset)
}

func (s *PublicationService) ListByAuthor(ctx context.Context, authorID uint) ([]models.Publication, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return s.pubRepo.ListByAuthor(ctx, authorID)
}

// FeedFor returns all publications authored by the users the given user
// follows, newest first. Served through a short-TTL cache-aside; an empty
// following set short-circuits to an empty feed without touching the cache.
func (s *PublicationService) FeedFor(ctx context.Context, userID uint) ([]models.Publication, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	followedIDs, err := s.followRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followedIDs) == 0 {
		return []models.Publication{}, nil
	}

	var feed []models.Publication
	err = cache.Aside(ctx, cache.FeedKey(userID), &feed, cache.FeedTTL, func() error {
		publications, err := s.pubRepo.ListByAuthors(ctx, followedIDs)
		if err != nil {
			return err
		}
		feed = publications
		return nil
	})
	if err != nil {
		return nil, err
	}
	return feed, nil
}
