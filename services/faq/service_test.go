package faq

import (
	"context"
	"sync"
	"testing"

	faqRepo "contour/database/repository/faq"
	"contour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFaqRepo is an in-memory FaqRepository. SwapOrder mutates both entries
// under one lock, matching the all-or-nothing contract of the real transaction.
type fakeFaqRepo struct {
	mu   sync.Mutex
	faqs map[string]*models.Faq
}

func newFakeFaqRepo(faqs ...*models.Faq) *fakeFaqRepo {
	r := &fakeFaqRepo{faqs: make(map[string]*models.Faq)}
	for _, f := range faqs {
		r.faqs[f.ID] = f
	}
	return r
}

func (r *fakeFaqRepo) Create(ctx context.Context, faq *models.Faq) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *faq
	r.faqs[faq.ID] = &copied
	return nil
}

func (r *fakeFaqRepo) GetByID(ctx context.Context, id string) (*models.Faq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.faqs[id]
	if !ok {
		return nil, faqRepo.ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFaqRepo) ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Faq
	for _, f := range r.faqs {
		if f.Expedition == expeditionID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFaqRepo) ListAll(ctx context.Context) ([]models.Faq, error) { return nil, nil }

func (r *fakeFaqRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeFaqRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeFaqRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) { return 0, nil }

func (r *fakeFaqRepo) NextOrder(ctx context.Context, expeditionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, f := range r.faqs {
		if f.Expedition == expeditionID && f.Order > max {
			max = f.Order
		}
	}
	return max + 1, nil
}

func (r *fakeFaqRepo) SwapOrder(ctx context.Context, id1, id2 string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f1, ok1 := r.faqs[id1]
	f2, ok2 := r.faqs[id2]
	if !ok1 || !ok2 {
		return faqRepo.ErrNotFound
	}
	f1.Order, f2.Order = f2.Order, f1.Order
	return nil
}

func (r *fakeFaqRepo) EnsureIndexes() error { return nil }

func (r *fakeFaqRepo) order(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.faqs[id].Order
}

func TestSwapOrderExchangesOrders(t *testing.T) {
	repo := newFakeFaqRepo(
		&models.Faq{ID: "faq_a", Expedition: "exp_1", Order: 1},
		&models.Faq{ID: "faq_b", Expedition: "exp_1", Order: 2},
	)
	svc := &DefaultFaqService{Repo: repo}

	require.NoError(t, svc.SwapOrder(context.Background(), "faq_a", "faq_b"))
	assert.Equal(t, 2, repo.order("faq_a"))
	assert.Equal(t, 1, repo.order("faq_b"))

	// Swapping back restores the original ordering.
	require.NoError(t, svc.SwapOrder(context.Background(), "faq_a", "faq_b"))
	assert.Equal(t, 1, repo.order("faq_a"))
	assert.Equal(t, 2, repo.order("faq_b"))
}

func TestSwapOrderSameIDIsNoOp(t *testing.T) {
	repo := newFakeFaqRepo(&models.Faq{ID: "faq_a", Expedition: "exp_1", Order: 1})
	svc := &DefaultFaqService{Repo: repo}

	require.NoError(t, svc.SwapOrder(context.Background(), "faq_a", "faq_a"))
	assert.Equal(t, 1, repo.order("faq_a"))
}

func TestSwapOrderRejectsCrossExpedition(t *testing.T) {
	repo := newFakeFaqRepo(
		&models.Faq{ID: "faq_a", Expedition: "exp_1", Order: 1},
		&models.Faq{ID: "faq_b", Expedition: "exp_2", Order: 1},
	)
	svc := &DefaultFaqService{Repo: repo}

	err := svc.SwapOrder(context.Background(), "faq_a", "faq_b")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	// Neither entry may change on rejection.
	assert.Equal(t, 1, repo.order("faq_a"))
	assert.Equal(t, 1, repo.order("faq_b"))
}

func TestSwapOrderUnknownFaq(t *testing.T) {
	repo := newFakeFaqRepo(&models.Faq{ID: "faq_a", Expedition: "exp_1", Order: 1})
	svc := &DefaultFaqService{Repo: repo}

	err := svc.SwapOrder(context.Background(), "faq_a", "faq_missing")
	assert.ErrorIs(t, err, faqRepo.ErrNotFound)
}

func TestCreateAssignsNextOrder(t *testing.T) {
	repo := newFakeFaqRepo(
		&models.Faq{ID: "faq_a", Expedition: "exp_1", Order: 3},
		&models.Faq{ID: "faq_b", Expedition: "exp_2", Order: 9},
	)
	svc := &DefaultFaqService{Repo: repo}

	created, err := svc.Create(context.Background(), &models.Faq{
		Expedition:  "exp_1",
		Title:       "What fitness level do I need?",
		Description: "A good base of cardio fitness is enough for most treks.",
	})
	require.NoError(t, err)

	// Orders are per expedition: exp_2's 9 does not bleed into exp_1.
	assert.Equal(t, 4, created.Order)
}

func TestCreateKeepsExplicitOrder(t *testing.T) {
	repo := newFakeFaqRepo()
	svc := &DefaultFaqService{Repo: repo}

	created, err := svc.Create(context.Background(), &models.Faq{
		Expedition:  "exp_1",
		Title:       "Do I need a visa?",
		Description: "Most nationalities can obtain one on arrival.",
		Order:       7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.Order)
}

func TestCreateRequiresContent(t *testing.T) {
	svc := &DefaultFaqService{Repo: newFakeFaqRepo()}

	_, err := svc.Create(context.Background(), &models.Faq{Expedition: "exp_1"})

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}
