package repository

import (
	"context"
	"errors"

	"plaza/internal/models"

	"gorm.io/gorm"
)

// PublicationRepository defines persistence operations for publications.
type PublicationRepository interface {
	Create(ctx context.Context, publication *models.Publication) error
	GetByID(ctx context.Context, id uint) (*models.Publication, error)
	Update(ctx context.Context, publication *models.Publication) error
	DeleteWithComments(ctx context.Context, id uint) error
	ListAll(ctx context.Context, limit, offset int) ([]models.Publication, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Publication, error)
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Publication, error)
}

type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository returns a new PublicationRepository implementation.
func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	if err := r.db.WithContext(ctx).Create(publication).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *publicationRepository) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	var publication models.Publication
	if err := r.db.WithContext(ctx).Preload("Author").First(&publication, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Publication", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &publication, nil
}

func (r *publicationRepository) Update(ctx context.Context, publication *models.Publication) error {
	if err := r.db.WithContext(ctx).Save(publication).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteWithComments removes the publication and its comments in one
// transaction, so a crash cannot leave orphaned comments behind.
func (r *publicationRepository) DeleteWithComments(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Publication{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *publicationRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Publication, error) {
	var publications []models.Publication
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&publications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return publications, nil
}

func (r *publicationRepository) ListByAuthor(ctx context.Context, authorID uint) ([]models.Publication, error) {
	var publications []models.Publication
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&publications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return publications, nil
}

func (r *publicationRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Publication, error) {
	if len(authorIDs) == 0 {
		return []models.Publication{}, nil
	}
	var publications []models.Publication
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&publications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return publications, nil
}
