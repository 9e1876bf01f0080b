package service

import (
	"context"

	"plaza/internal/models"
	"plaza/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	pubRepo     repository.PublicationRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	CallerID      uint
	AuthorID      uint
	PublicationID uint
	Text          string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	pubRepo repository.PublicationRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{commentRepo: commentRepo, pubRepo: pubRepo, userRepo: userRepo}
}

// Add attaches a comment to a publication. Comments are immutable after
// creation and live exactly as long as their publication.
func (s *CommentService) Add(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.CallerID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only comment on your own behalf")
	}
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, err
	}
	if _, err := s.pubRepo.GetByID(ctx, in.PublicationID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AuthorID:      in.AuthorID,
		PublicationID: in.PublicationID,
		Text:          in.Text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListByPublication(ctx context.Context, publicationID uint) ([]models.Comment, error) {
	if _, err := s.pubRepo.GetByID(ctx, publicationID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPublication(ctx, publicationID)
}
