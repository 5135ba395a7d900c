package departure

import (
	"context"
	"sync"
	"testing"

	departureRepo "contour/database/repository/departure"
	"contour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupRepo struct {
	mu         sync.Mutex
	departures map[string]*models.GroupDeparture
}

func newFakeGroupRepo(deps ...*models.GroupDeparture) *fakeGroupRepo {
	r := &fakeGroupRepo{departures: make(map[string]*models.GroupDeparture)}
	for _, d := range deps {
		r.departures[d.ID] = d
	}
	return r
}

func (r *fakeGroupRepo) Create(ctx context.Context, dep *models.GroupDeparture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *dep
	r.departures[dep.ID] = &copied
	return nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id string) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	copied := *dep
	return &copied, nil
}

func (r *fakeGroupRepo) GetAll(ctx context.Context) ([]models.GroupDeparture, error) {
	return nil, nil
}

func (r *fakeGroupRepo) GetByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error) {
	return nil, nil
}

func (r *fakeGroupRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	delete(fields, "soldQuantity")
	if raw, ok := fields["totalQuantity"]; ok {
		total := raw.(int)
		if total < dep.SoldQuantity {
			return nil, departureRepo.ErrTotalBelowSold
		}
		dep.TotalQuantity = total
	}
	copied := *dep
	return &copied, nil
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakeGroupRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) { return 0, nil }

func (r *fakeGroupRepo) ReserveSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	if dep.SoldQuantity+n > dep.TotalQuantity {
		return nil, departureRepo.ErrNoSeats
	}
	dep.SoldQuantity += n
	copied := *dep
	return &copied, nil
}

func (r *fakeGroupRepo) ReleaseSeats(ctx context.Context, id string, n int) (*models.GroupDeparture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dep, ok := r.departures[id]
	if !ok {
		return nil, departureRepo.ErrNotFound
	}
	dep.SoldQuantity -= n
	if dep.SoldQuantity < 0 {
		dep.SoldQuantity = 0
	}
	copied := *dep
	return &copied, nil
}

func (r *fakeGroupRepo) EnsureIndexes() error { return nil }

func TestAddSoldWithinCapacity(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 4})
	svc := &DefaultDepartureService{GroupRepo: repo}

	updated, err := svc.AddSold(context.Background(), "gdep_1", 5)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.SoldQuantity)
}

func TestAddSoldCappedAtCapacity(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 10})
	svc := &DefaultDepartureService{GroupRepo: repo}

	_, err := svc.AddSold(context.Background(), "gdep_1", 5)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Available)
	assert.Equal(t, 5, capErr.Requested)

	current, err := repo.GetByID(context.Background(), "gdep_1")
	require.NoError(t, err)
	assert.Equal(t, 10, current.SoldQuantity)
}

func TestAddSoldNegativeReleases(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 10})
	svc := &DefaultDepartureService{GroupRepo: repo}

	updated, err := svc.AddSold(context.Background(), "gdep_1", -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.SoldQuantity)
}

func TestAddSoldReleaseFloorsAtZero(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 3})
	svc := &DefaultDepartureService{GroupRepo: repo}

	updated, err := svc.AddSold(context.Background(), "gdep_1", -8)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.SoldQuantity)
}

func TestAddSoldRejectsZero(t *testing.T) {
	svc := &DefaultDepartureService{GroupRepo: newFakeGroupRepo()}

	_, err := svc.AddSold(context.Background(), "gdep_1", 0)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestUpdateGroupRejectsTotalBelowSold(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 8})
	svc := &DefaultDepartureService{GroupRepo: repo}

	_, err := svc.UpdateGroup(context.Background(), "gdep_1", map[string]interface{}{"totalQuantity": 5})
	require.ErrorIs(t, err, departureRepo.ErrTotalBelowSold)

	// The rejected patch must leave the document untouched.
	current, err := repo.GetByID(context.Background(), "gdep_1")
	require.NoError(t, err)
	assert.Equal(t, 12, current.TotalQuantity)
	assert.Equal(t, 8, current.SoldQuantity)
}

func TestUpdateGroupAllowsShrinkDownToSold(t *testing.T) {
	repo := newFakeGroupRepo(&models.GroupDeparture{ID: "gdep_1", TotalQuantity: 12, SoldQuantity: 8})
	svc := &DefaultDepartureService{GroupRepo: repo}

	updated, err := svc.UpdateGroup(context.Background(), "gdep_1", map[string]interface{}{"totalQuantity": 8})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.TotalQuantity)
	assert.Equal(t, 8, updated.SoldQuantity)
}

func TestCreateGroupResetsSoldQuantity(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := &DefaultDepartureService{GroupRepo: repo}

	created, err := svc.CreateGroup(context.Background(), &models.GroupDeparture{
		Expedition:    "exp_1",
		TotalQuantity: 12,
		SoldQuantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.SoldQuantity)
	assert.NotEmpty(t, created.ID)
}
