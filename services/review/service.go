package review

import (
	"context"

	reviewRepo "contour/database/repository/review"
	"contour/models"
	"contour/utils"
)

// ValidationError signals malformed review input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ReviewService manages expedition reviews.
type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	ListByExpedition(ctx context.Context, expeditionID string) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error)
	Approve(ctx context.Context, id string, approved bool) (*models.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

func (s *DefaultReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.Expedition == "" {
		return nil, &ValidationError{Message: "expedition reference is required"}
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, &ValidationError{Message: "rating must be between 1 and 5"}
	}

	review.ID = utils.NewBusinessID("review")
	review.Approved = false
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *DefaultReviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultReviewService) ListByExpedition(ctx context.Context, expeditionID string) ([]models.Review, error) {
	return s.Repo.ListByExpedition(ctx, expeditionID)
}

func (s *DefaultReviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultReviewService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error) {
	return s.Repo.UpdateFields(ctx, id, fields)
}

func (s *DefaultReviewService) Approve(ctx context.Context, id string, approved bool) (*models.Review, error) {
	return s.Repo.UpdateFields(ctx, id, map[string]interface{}{"approved": approved})
}

func (s *DefaultReviewService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultReviewService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return s.Repo.DeleteMany(ctx, ids)
}
