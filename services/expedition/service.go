package expedition

import (
	"context"
	"strings"

	expeditionRepo "contour/database/repository/expedition"
	"contour/models"
	"contour/utils"
)

// ValidationError signals malformed expedition input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExpeditionService manages the expedition catalog.
type ExpeditionService interface {
	Create(ctx context.Context, exp *models.Expedition) (*models.Expedition, error)
	Get(ctx context.Context, id string) (*models.Expedition, error)
	GetBySlug(ctx context.Context, slug string) (*models.Expedition, error)
	ListAll(ctx context.Context) ([]models.Expedition, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Expedition, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// DefaultExpeditionService implements ExpeditionService.
type DefaultExpeditionService struct {
	Repo expeditionRepo.ExpeditionRepository
}

func (s *DefaultExpeditionService) Create(ctx context.Context, exp *models.Expedition) (*models.Expedition, error) {
	if exp.Name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}

	exp.ID = utils.NewBusinessID("exp")
	if exp.Slug == "" {
		exp.Slug = slugify(exp.Name)
	}

	if err := s.Repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *DefaultExpeditionService) Get(ctx context.Context, id string) (*models.Expedition, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultExpeditionService) GetBySlug(ctx context.Context, slug string) (*models.Expedition, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

func (s *DefaultExpeditionService) ListAll(ctx context.Context) ([]models.Expedition, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultExpeditionService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Expedition, error) {
	return s.Repo.UpdateFields(ctx, id, fields)
}

func (s *DefaultExpeditionService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultExpeditionService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return s.Repo.DeleteMany(ctx, ids)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
