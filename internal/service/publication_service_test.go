package service

import (
	"context"
	"strings"
	"testing"

	"plaza/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pubRepoWith(pubs map[uint]*models.Publication) *stubPublicationRepo {
	return &stubPublicationRepo{
		getByID: func(_ context.Context, id uint) (*models.Publication, error) {
			if p, ok := pubs[id]; ok {
				return p, nil
			}
			return nil, models.NewNotFoundError("Publication", id)
		},
		create:             func(_ context.Context, _ *models.Publication) error { return nil },
		update:             func(_ context.Context, _ *models.Publication) error { return nil },
		deleteWithComments: func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCreatePublication(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		pubs := pubRepoWith(map[uint]*models.Publication{})
		pubs.create = func(_ context.Context, p *models.Publication) error {
			p.ID = 7
			return nil
		}
		pubs.getByID = func(_ context.Context, id uint) (*models.Publication, error) {
			return &models.Publication{ID: id, AuthorID: 1, Text: "hello"}, nil
		}
		svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())

		pub, err := svc.Create(ctx, CreatePublicationInput{CallerID: 1, AuthorID: 1, Text: "hello"})
		require.NoError(t, err)
		assert.Equal(t, uint(7), pub.ID)
	})

	t.Run("publishing as someone else is forbidden", func(t *testing.T) {
		svc := NewPublicationService(pubRepoWith(nil), &stubFollowRepo{}, twoUsersRepo())
		_, err := svc.Create(ctx, CreatePublicationInput{CallerID: 2, AuthorID: 1, Text: "hello"})
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		svc := NewPublicationService(pubRepoWith(nil), &stubFollowRepo{}, twoUsersRepo())
		_, err := svc.Create(ctx, CreatePublicationInput{CallerID: 1, AuthorID: 1, Text: ""})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})

	t.Run("oversized text is rejected", func(t *testing.T) {
		svc := NewPublicationService(pubRepoWith(nil), &stubFollowRepo{}, twoUsersRepo())
		_, err := svc.Create(ctx, CreatePublicationInput{
			CallerID: 1, AuthorID: 1, Text: strings.Repeat("x", maxPublicationLen+1),
		})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})
}

func TestEditPublication(t *testing.T) {
	ctx := context.Background()

	t.Run("success updates text", func(t *testing.T) {
		stored := &models.Publication{ID: 5, AuthorID: 1, Text: "before"}
		pubs := pubRepoWith(map[uint]*models.Publication{5: stored})
		updated := false
		pubs.update = func(_ context.Context, p *models.Publication) error {
			updated = true
			assert.Equal(t, "after", p.Text)
			return nil
		}
		svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())

		pub, err := svc.Edit(ctx, EditPublicationInput{CallerID: 1, AuthorID: 1, PublicationID: 5, Text: "after"})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "after", pub.Text)
	})

	t.Run("editing another author's publication is forbidden", func(t *testing.T) {
		stored := &models.Publication{ID: 5, AuthorID: 1, Text: "before"}
		pubs := pubRepoWith(map[uint]*models.Publication{5: stored})
		svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())

		// Caller claims to be author 2 but the stored publication belongs to 1
		_, err := svc.Edit(ctx, EditPublicationInput{CallerID: 2, AuthorID: 2, PublicationID: 5, Text: "after"})
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})

	t.Run("unknown publication", func(t *testing.T) {
		svc := NewPublicationService(pubRepoWith(map[uint]*models.Publication{}), &stubFollowRepo{}, twoUsersRepo())
		_, err := svc.Edit(ctx, EditPublicationInput{CallerID: 1, AuthorID: 1, PublicationID: 99, Text: "x"})
		assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
	})
}

func TestDeletePublication(t *testing.T) {
	ctx := context.Background()
	stored := &models.Publication{ID: 5, AuthorID: 1}

	t.Run("success cascades to comments", func(t *testing.T) {
		pubs := pubRepoWith(map[uint]*models.Publication{5: stored})
		deleted := uint(0)
		pubs.deleteWithComments = func(_ context.Context, id uint) error {
			deleted = id
			return nil
		}
		svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())

		require.NoError(t, svc.Delete(ctx, 1, 1, 5))
		assert.Equal(t, uint(5), deleted)
	})

	t.Run("deleting another author's publication is forbidden", func(t *testing.T) {
		pubs := pubRepoWith(map[uint]*models.Publication{5: stored})
		svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())
		err := svc.Delete(ctx, 2, 2, 5)
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})
}

func TestFeedFor(t *testing.T) {
	ctx := context.Background()

	t.Run("no follows yields an empty feed without querying publications", func(t *testing.T) {
		follows := &stubFollowRepo{
			followedIDs: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		}
		pubs := pubRepoWith(nil)
		pubs.listByAuthors = func(_ context.Context, _ []uint) ([]models.Publication, error) {
			t.Fatal("ListByAuthors should not be called for an empty following set")
			return nil, nil
		}
		svc := NewPublicationService(pubs, follows, twoUsersRepo())

		feed, err := svc.FeedFor(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, feed)
		assert.NotNil(t, feed)
	})

	t.Run("feed is the union of followed authors' publications", func(t *testing.T) {
		follows := &stubFollowRepo{
			followedIDs: func(_ context.Context, _ uint) ([]uint, error) { return []uint{2}, nil },
		}
		pubs := pubRepoWith(nil)
		pubs.listByAuthors = func(_ context.Context, authorIDs []uint) ([]models.Publication, error) {
			assert.Equal(t, []uint{2}, authorIDs)
			return []models.Publication{
				{ID: 2, AuthorID: 2, Text: "newer"},
				{ID: 1, AuthorID: 2, Text: "older"},
			}, nil
		}
		svc := NewPublicationService(pubs, follows, twoUsersRepo())

		feed, err := svc.FeedFor(ctx, 1)
		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Equal(t, "newer", feed[0].Text)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewPublicationService(pubRepoWith(nil), &stubFollowRepo{}, twoUsersRepo())
		_, err := svc.FeedFor(ctx, 99)
		assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
	})
}

func TestListByAuthor(t *testing.T) {
	ctx := context.Background()
	pubs := pubRepoWith(nil)
	pubs.listByAuthor = func(_ context.Context, authorID uint) ([]models.Publication, error) {
		return []models.Publication{{ID: 1, AuthorID: authorID}}, nil
	}
	svc := NewPublicationService(pubs, &stubFollowRepo{}, twoUsersRepo())

	list, err := svc.ListByAuthor(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByAuthor(ctx, 99)
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}
