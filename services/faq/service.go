package faq

import (
	"context"

	faqRepo "contour/database/repository/faq"
	"contour/models"
	"contour/utils"
)

// FaqService manages FAQ entries and their display ordering.
type FaqService interface {
	Create(ctx context.Context, faq *models.Faq) (*models.Faq, error)
	Get(ctx context.Context, id string) (*models.Faq, error)
	ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error)
	ListAll(ctx context.Context) ([]models.Faq, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	// SwapOrder exchanges display order between two FAQs of one expedition.
	SwapOrder(ctx context.Context, id1, id2 string) error
}

// DefaultFaqService implements FaqService.
type DefaultFaqService struct {
	Repo faqRepo.FaqRepository
}

// Create assigns the next display order for the expedition when the caller
// does not supply one.
func (s *DefaultFaqService) Create(ctx context.Context, faq *models.Faq) (*models.Faq, error) {
	if faq.Title == "" || faq.Description == "" {
		return nil, NewValidationError("title and description are required")
	}
	if faq.Expedition == "" {
		return nil, NewValidationError("expedition reference is required")
	}

	faq.ID = utils.NewBusinessID("faq")
	if faq.Order == 0 {
		next, err := s.Repo.NextOrder(ctx, faq.Expedition)
		if err != nil {
			return nil, err
		}
		faq.Order = next
	}

	if err := s.Repo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *DefaultFaqService) Get(ctx context.Context, id string) (*models.Faq, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultFaqService) ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error) {
	return s.Repo.ListByExpedition(ctx, expeditionID)
}

func (s *DefaultFaqService) ListAll(ctx context.Context) ([]models.Faq, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultFaqService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.Repo.UpdateFields(ctx, id, fields)
}

func (s *DefaultFaqService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultFaqService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return s.Repo.DeleteMany(ctx, ids)
}

// SwapOrder exchanges the order values of two FAQs under one expedition.
// Swapping an entry with itself is a successful no-op. The exchange itself is
// transactional in the repository, so no intermediate state is ever visible.
func (s *DefaultFaqService) SwapOrder(ctx context.Context, id1, id2 string) error {
	if id1 == id2 {
		return nil
	}

	faq1, err := s.Repo.GetByID(ctx, id1)
	if err != nil {
		return err
	}
	faq2, err := s.Repo.GetByID(ctx, id2)
	if err != nil {
		return err
	}

	if faq1.Expedition != faq2.Expedition {
		return NewValidationError("FAQs must belong to the same expedition to swap orders")
	}

	return s.Repo.SwapOrder(ctx, id1, id2)
}
