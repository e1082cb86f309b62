package service

import (
	"context"
	"strings"
	"testing"

	"astrofolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentService_CreateComment_Validation(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopImageRepo(), noopUserRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, 1, 5, CreateCommentInput{Content: "   "})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, 1, 5, CreateCommentInput{Content: strings.Repeat("a", maxCommentLength+1)})
		assertValidationError(t, err)
	})
}

func TestCommentService_CreateComment_MissingImage(t *testing.T) {
	images := noopImageRepo()
	images.getByIDFn = func(_ context.Context, _, _ uint) (*models.Image, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewCommentService(noopCommentRepo(), images, noopUserRepo())

	_, err := svc.CreateComment(context.Background(), 1, 404, CreateCommentInput{Content: "nice"})
	assertNotFoundError(t, err)
}

func TestCommentService_CreateComment_ParentOnDifferentImage(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, ImageID: 99}, nil
	}
	svc := NewCommentService(comments, noopImageRepo(), noopUserRepo())

	parentID := uint(7)
	_, err := svc.CreateComment(context.Background(), 1, 5, CreateCommentInput{Content: "reply", ParentID: &parentID})
	assertValidationError(t, err)
}

func TestCommentService_CreateComment_Threaded(t *testing.T) {
	var created *models.Comment
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		if created != nil && id == created.ID {
			return created, nil
		}
		return &models.Comment{ID: id, ImageID: 5}, nil
	}
	comments.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 12
		created = comment
		return nil
	}
	svc := NewCommentService(comments, noopImageRepo(), noopUserRepo())

	parentID := uint(7)
	comment, err := svc.CreateComment(context.Background(), 1, 5, CreateCommentInput{Content: " great detail ", ParentID: &parentID})
	require.NoError(t, err)
	assert.Equal(t, "great detail", comment.Content)
	assert.Equal(t, models.CommentStatusApproved, comment.Status)
	require.NotNil(t, comment.ParentID)
	assert.Equal(t, parentID, *comment.ParentID)
}

func TestCommentService_ListComments_NonAdminSeesOnlyApproved(t *testing.T) {
	var gotStatus models.CommentStatus
	comments := noopCommentRepo()
	comments.listByImageFn = func(_ context.Context, _ uint, status models.CommentStatus) ([]*models.Comment, error) {
		gotStatus = status
		return nil, nil
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsAdmin: id == 9}, nil
	}
	svc := NewCommentService(comments, noopImageRepo(), users)
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		list, err := svc.ListComments(ctx, 5, models.CommentStatusPending, 0)
		require.NoError(t, err)
		assert.Equal(t, models.CommentStatusApproved, gotStatus)
		require.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("regular user", func(t *testing.T) {
		_, err := svc.ListComments(ctx, 5, models.CommentStatusSpam, 1)
		require.NoError(t, err)
		assert.Equal(t, models.CommentStatusApproved, gotStatus)
	})

	t.Run("admin keeps requested status", func(t *testing.T) {
		_, err := svc.ListComments(ctx, 5, models.CommentStatusPending, 9)
		require.NoError(t, err)
		assert.Equal(t, models.CommentStatusPending, gotStatus)
	})

	t.Run("admin with invalid status", func(t *testing.T) {
		_, err := svc.ListComments(ctx, 5, "bogus", 9)
		assertValidationError(t, err)
	})
}

func TestCommentService_UpdateComment_AuthorOnly(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1, Content: "old"}, nil
	}
	svc := NewCommentService(comments, noopImageRepo(), noopUserRepo())
	ctx := context.Background()

	_, err := svc.UpdateComment(ctx, 2, 7, "edited")
	assertUnauthorizedError(t, err)

	comment, err := svc.UpdateComment(ctx, 1, 7, "  edited  ")
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Content)
}

func TestCommentService_ModerateComment(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsAdmin: id == 9}, nil
	}
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopImageRepo(), users)
		_, err := svc.ModerateComment(ctx, 9, 7, "bogus")
		assertValidationError(t, err)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), noopImageRepo(), users)
		_, err := svc.ModerateComment(ctx, 1, 7, models.CommentStatusSpam)
		assertUnauthorizedError(t, err)
	})

	t.Run("missing comment", func(t *testing.T) {
		comments := noopCommentRepo()
		comments.updateStatusFn = func(_ context.Context, _ uint, _ models.CommentStatus) error {
			return gorm.ErrRecordNotFound
		}
		svc := NewCommentService(comments, noopImageRepo(), users)
		_, err := svc.ModerateComment(ctx, 9, 404, models.CommentStatusSpam)
		assertNotFoundError(t, err)
	})

	t.Run("admin moderates", func(t *testing.T) {
		var gotStatus models.CommentStatus
		comments := noopCommentRepo()
		comments.updateStatusFn = func(_ context.Context, id uint, status models.CommentStatus) error {
			assert.Equal(t, uint(7), id)
			gotStatus = status
			return nil
		}
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, Status: gotStatus}, nil
		}
		svc := NewCommentService(comments, noopImageRepo(), users)
		comment, err := svc.ModerateComment(ctx, 9, 7, models.CommentStatusSpam)
		require.NoError(t, err)
		assert.Equal(t, models.CommentStatusSpam, comment.Status)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1}, nil
	}
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsAdmin: id == 9}, nil
	}
	svc := NewCommentService(comments, noopImageRepo(), users)
	ctx := context.Background()

	assertUnauthorizedError(t, svc.DeleteComment(ctx, 2, 7))
	assert.NoError(t, svc.DeleteComment(ctx, 1, 7))
	assert.NoError(t, svc.DeleteComment(ctx, 9, 7))
}
