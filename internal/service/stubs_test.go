package service

import (
	"context"

	"plaza/internal/models"
)

// Function-field stubs keep each test's behavior next to the assertion
// instead of spread across a shared mock.

type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	getByEmail    func(ctx context.Context, email string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
	update        func(ctx context.Context, user *models.User) error
	list          func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmail(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) UpdateDetails(ctx context.Context, user *models.User) error {
	return s.update(ctx, user)
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.list(ctx, limit, offset)
}

// userRepoWith returns a stub where every user with an ID in the map exists.
func userRepoWith(users map[uint]*models.User) *stubUserRepo {
	return &stubUserRepo{
		getByID: func(_ context.Context, id uint) (*models.User, error) {
			if u, ok := users[id]; ok {
				return u, nil
			}
			return nil, models.NewNotFoundError("User", id)
		},
		getByUsername: func(_ context.Context, username string) (*models.User, error) {
			for _, u := range users {
				if u.Username == username {
					return u, nil
				}
			}
			return nil, nil
		},
		getByEmail: func(_ context.Context, email string) (*models.User, error) {
			for _, u := range users {
				if u.Email == email {
					return u, nil
				}
			}
			return nil, nil
		},
		create: func(_ context.Context, _ *models.User) error { return nil },
		update: func(_ context.Context, _ *models.User) error { return nil },
		list:   func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

type stubFollowRepo struct {
	create      func(ctx context.Context, follow *models.Follow) error
	delete      func(ctx context.Context, followerID, followedID uint) error
	followers   func(ctx context.Context, userID uint) ([]models.User, error)
	following   func(ctx context.Context, userID uint) ([]models.User, error)
	followedIDs func(ctx context.Context, userID uint) ([]uint, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, follow *models.Follow) error {
	return s.create(ctx, follow)
}

func (s *stubFollowRepo) Delete(ctx context.Context, followerID, followedID uint) error {
	return s.delete(ctx, followerID, followedID)
}

func (s *stubFollowRepo) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followers(ctx, userID)
}

func (s *stubFollowRepo) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.following(ctx, userID)
}

func (s *stubFollowRepo) FollowedIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followedIDs(ctx, userID)
}

type stubPublicationRepo struct {
	create             func(ctx context.Context, publication *models.Publication) error
	getByID            func(ctx context.Context, id uint) (*models.Publication, error)
	update             func(ctx context.Context, publication *models.Publication) error
	deleteWithComments func(ctx context.Context, id uint) error
	listAll            func(ctx context.Context, limit, offset int) ([]models.Publication, error)
	listByAuthor       func(ctx context.Context, authorID uint) ([]models.Publication, error)
	listByAuthors      func(ctx context.Context, authorIDs []uint) ([]models.Publication, error)
}

func (s *stubPublicationRepo) Create(ctx context.Context, publication *models.Publication) error {
	return s.create(ctx, publication)
}

func (s *stubPublicationRepo) GetByID(ctx context.Context, id uint) (*models.Publication, error) {
	return s.getByID(ctx, id)
}

func (s *stubPublicationRepo) Update(ctx context.Context, publication *models.Publication) error {
	return s.update(ctx, publication)
}

func (s *stubPublicationRepo) DeleteWithComments(ctx context.Context, id uint) error {
	return s.deleteWithComments(ctx, id)
}

func (s *stubPublicationRepo) ListAll(ctx context.Context, limit, offset int) ([]models.Publication, error) {
	return s.listAll(ctx, limit, offset)
}

func (s *stubPublicationRepo) ListByAuthor(ctx context.Context, authorID uint) ([]models.Publication, error) {
	return s.listByAuthor(ctx, authorID)
}

func (s *stubPublicationRepo) ListByAuthors(ctx context.Context, authorIDs []uint) ([]models.Publication, error) {
	return s.listByAuthors(ctx, authorIDs)
}

type stubCommentRepo struct {
	create            func(ctx context.Context, comment *models.Comment) error
	getByID           func(ctx context.Context, id uint) (*models.Comment, error)
	listByPublication func(ctx context.Context, publicationID uint) ([]models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.create(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByID(ctx, id)
}

func (s *stubCommentRepo) ListByPublication(ctx context.Context, publicationID uint) ([]models.Comment, error) {
	return s.listByPublication(ctx, publicationID)
}
