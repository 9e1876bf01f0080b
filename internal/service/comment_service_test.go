package service

import (
	"context"
	"testing"

	"plaza/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	pubs := pubRepoWith(map[uint]*models.Publication{
		5: {ID: 5, AuthorID: 2, Text: "a publication"},
	})

	t.Run("success", func(t *testing.T) {
		comments := &stubCommentRepo{
			create: func(_ context.Context, c *models.Comment) error {
				c.ID = 3
				return nil
			},
			getByID: func(_ context.Context, id uint) (*models.Comment, error) {
				return &models.Comment{ID: id, AuthorID: 1, PublicationID: 5, Text: "nice"}, nil
			},
		}
		svc := NewCommentService(comments, pubs, twoUsersRepo())

		comment, err := svc.Add(ctx, AddCommentInput{CallerID: 1, AuthorID: 1, PublicationID: 5, Text: "nice"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), comment.ID)
		assert.Equal(t, "nice", comment.Text)
	})

	t.Run("commenting as someone else is forbidden", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{}, pubs, twoUsersRepo())
		_, err := svc.Add(ctx, AddCommentInput{CallerID: 2, AuthorID: 1, PublicationID: 5, Text: "nice"})
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{}, pubs, twoUsersRepo())
		_, err := svc.Add(ctx, AddCommentInput{CallerID: 1, AuthorID: 1, PublicationID: 5, Text: ""})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})

	t.Run("unknown publication", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{}, pubs, twoUsersRepo())
		_, err := svc.Add(ctx, AddCommentInput{CallerID: 1, AuthorID: 1, PublicationID: 99, Text: "nice"})
		assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
	})
}

func TestListByPublication(t *testing.T) {
	ctx := context.Background()
	pubs := pubRepoWith(map[uint]*models.Publication{
		5: {ID: 5, AuthorID: 2},
	})
	comments := &stubCommentRepo{
		listByPublication: func(_ context.Context, publicationID uint) ([]models.Comment, error) {
			return []models.Comment{
				{ID: 1, PublicationID: publicationID, Text: "first"},
				{ID: 2, PublicationID: publicationID, Text: "second"},
			}, nil
		},
	}
	svc := NewCommentService(comments, pubs, twoUsersRepo())

	list, err := svc.ListByPublication(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)

	_, err = svc.ListByPublication(ctx, 99)
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}
