package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	faqRepo "contour/database/repository/faq"
	"contour/models"
	faqSvc "contour/services/faq"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubFaqService struct {
	swapErr error
}

func (s *stubFaqService) Create(ctx context.Context, faq *models.Faq) (*models.Faq, error) {
	return nil, nil
}

func (s *stubFaqService) Get(ctx context.Context, id string) (*models.Faq, error) {
	return nil, nil
}

func (s *stubFaqService) ListByExpedition(ctx context.Context, expeditionID string) ([]models.Faq, error) {
	return nil, nil
}

func (s *stubFaqService) ListAll(ctx context.Context) ([]models.Faq, error) { return nil, nil }

func (s *stubFaqService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Faq, error) {
	return nil, nil
}

func (s *stubFaqService) Delete(ctx context.Context, id string) error { return nil }

func (s *stubFaqService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	return 0, nil
}

func (s *stubFaqService) SwapOrder(ctx context.Context, id1, id2 string) error {
	return s.swapErr
}

func swapOrderRequest(t *testing.T, svc *stubFaqService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := &FaqHandler{Service: svc}
	router.POST("/api/faq/swap-order", handler.SwapFaqOrder)

	req := httptest.NewRequest(http.MethodPost, "/api/faq/swap-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwapFaqOrderReturns200(t *testing.T) {
	w := swapOrderRequest(t, &stubFaqService{}, `{"id1":"faq_a","id2":"faq_b"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}

func TestSwapFaqOrderCrossExpeditionReturns400(t *testing.T) {
	svc := &stubFaqService{swapErr: faqSvc.NewValidationError("FAQs must belong to the same expedition to swap orders")}

	w := swapOrderRequest(t, svc, `{"id1":"faq_a","id2":"faq_b"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwapFaqOrderUnknownFaqReturns404(t *testing.T) {
	svc := &stubFaqService{swapErr: faqRepo.ErrNotFound}

	w := swapOrderRequest(t, svc, `{"id1":"faq_a","id2":"faq_missing"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwapFaqOrderMissingIDsReturns400(t *testing.T) {
	w := swapOrderRequest(t, &stubFaqService{}, `{"id1":"faq_a"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
