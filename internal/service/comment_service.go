package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"astrofolio/internal/models"
	"astrofolio/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 4000

// CommentService handles comment creation and moderation.
type CommentService struct {
	commentRepo repository.CommentRepository
	imageRepo   repository.ImageRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, imageRepo repository.ImageRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		imageRepo:   imageRepo,
		userRepo:    userRepo,
	}
}

// CreateCommentInput carries the fields accepted when posting a comment.
type CreateCommentInput struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// CreateComment posts a comment on an image. A parent comment, when given,
// must exist and belong to the same image.
func (s *CommentService) CreateComment(ctx context.Context, userID, imageID uint, input CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError(fmt.Sprintf("Comment content must be at most %d characters", maxCommentLength))
	}

	if _, err := s.imageRepo.GetByID(ctx, imageID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", imageID)
		}
		return nil, models.NewStorageError(err)
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Comment", *input.ParentID)
			}
			return nil, models.NewStorageError(err)
		}
		if parent.ImageID != imageID {
			return nil, models.NewValidationError("Parent comment belongs to a different image")
		}
	}

	comment := &models.Comment{
		ImageID:  imageID,
		UserID:   userID,
		ParentID: input.ParentID,
		Content:  content,
		Status:   models.CommentStatusApproved,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewStorageError(err)
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns an image's comments oldest first. Non-admin callers
// only ever see approved comments regardless of the requested status.
func (s *CommentService) ListComments(ctx context.Context, imageID uint, status models.CommentStatus, requesterID uint) ([]*models.Comment, error) {
	if _, err := s.imageRepo.GetByID(ctx, imageID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", imageID)
		}
		return nil, models.NewStorageError(err)
	}

	if !s.isAdmin(ctx, requesterID) {
		status = models.CommentStatusApproved
	} else if status != "" && !models.ValidCommentStatus(status) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid status %q", status))
	}

	comments, err := s.commentRepo.ListByImage(ctx, imageID, status)
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// UpdateComment edits a comment's content. Author only.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewStorageError(err)
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only edit your own comments")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewStorageError(err)
	}
	return comment, nil
}

// ModerateComment sets a comment's moderation status. Admin only.
func (s *CommentService) ModerateComment(ctx context.Context, requesterID, commentID uint, status models.CommentStatus) (*models.Comment, error) {
	if !models.ValidCommentStatus(status) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid status %q", status))
	}
	if !s.isAdmin(ctx, requesterID) {
		return nil, models.NewUnauthorizedError("Only admins can moderate comments")
	}

	if err := s.commentRepo.UpdateStatus(ctx, commentID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, models.NewStorageError(err)
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

// DeleteComment removes a comment. Author or admin only.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", commentID)
		}
		return models.NewStorageError(err)
	}
	if comment.UserID != userID && !s.isAdmin(ctx, userID) {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (s *CommentService) isAdmin(ctx context.Context, userID uint) bool {
	if userID == 0 {
		return false
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}
