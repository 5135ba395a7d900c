package departure

import (
	"context"
	"errors"
	"fmt"

	departureRepo "contour/database/repository/departure"
	"contour/models"
	"contour/utils"
)

// CapacityError signals that a manual sold-count adjustment would exceed the
// departure's total capacity.
type CapacityError struct {
	Available int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Only %d seats remaining, cannot mark %d seats as sold.", e.Available, e.Requested)
}

// ValidationError signals malformed departure input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DepartureService manages group and private departures.
type DepartureService interface {
	CreateGroup(ctx context.Context, dep *models.GroupDeparture) (*models.GroupDeparture, error)
	GetGroup(ctx context.Context, id string) (*models.GroupDeparture, error)
	ListGroup(ctx context.Context) ([]models.GroupDeparture, error)
	ListGroupByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error)
	UpdateGroup(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error)
	DeleteGroup(ctx context.Context, id string) error
	DeleteManyGroup(ctx context.Context, ids []string) (int64, error)

	// AddSold applies the admin's manual sold-count adjustment through the
	// same conditional update bookings use, so it can never oversell.
	AddSold(ctx context.Context, id string, total int) (*models.GroupDeparture, error)

	CreatePrivate(ctx context.Context, dep *models.PrivateDeparture) (*models.PrivateDeparture, error)
	GetPrivate(ctx context.Context, id string) (*models.PrivateDeparture, error)
	ListPrivate(ctx context.Context) ([]models.PrivateDeparture, error)
	ListPrivateByExpedition(ctx context.Context, expeditionID string) ([]models.PrivateDeparture, error)
	UpdatePrivate(ctx context.Context, id string, fields map[string]interface{}) (*models.PrivateDeparture, error)
	DeletePrivate(ctx context.Context, id string) error
	DeleteManyPrivate(ctx context.Context, ids []string) (int64, error)
}

// DefaultDepartureService implements DepartureService.
type DefaultDepartureService struct {
	GroupRepo   departureRepo.GroupDepartureRepository
	PrivateRepo departureRepo.PrivateDepartureRepository
}

func (s *DefaultDepartureService) CreateGroup(ctx context.Context, dep *models.GroupDeparture) (*models.GroupDeparture, error) {
	if dep.Expedition == "" {
		return nil, &ValidationError{Message: "expedition reference is required"}
	}
	if dep.TotalQuantity < 1 {
		return nil, &ValidationError{Message: "totalQuantity must be at least 1"}
	}

	dep.ID = utils.NewBusinessID("gdep")
	dep.SoldQuantity = 0
	if err := s.GroupRepo.Create(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (s *DefaultDepartureService) GetGroup(ctx context.Context, id string) (*models.GroupDeparture, error) {
	return s.GroupRepo.GetByID(ctx, id)
}

func (s *DefaultDepartureService) ListGroup(ctx context.Context) ([]models.GroupDeparture, error) {
	return s.GroupRepo.GetAll(ctx)
}

func (s *DefaultDepartureService) ListGroupByExpedition(ctx context.Context, expeditionID string) ([]models.GroupDeparture, error) {
	return s.GroupRepo.GetByExpedition(ctx, expeditionID)
}

func (s *DefaultDepartureService) UpdateGroup(ctx context.Context, id string, fields map[string]interface{}) (*models.GroupDeparture, error) {
	return s.GroupRepo.Update(ctx, id, fields)
}

func (s *DefaultDepartureService) DeleteGroup(ctx context.Context, id string) error {
	return s.GroupRepo.Delete(ctx, id)
}

func (s *DefaultDepartureService) DeleteManyGroup(ctx context.Context, ids []string) (int64, error) {
	return s.GroupRepo.DeleteMany(ctx, ids)
}

// AddSold adjusts the sold counter by total. Positive adjustments go through
// the capacity-checked reservation; negative ones release seats.
func (s *DefaultDepartureService) AddSold(ctx context.Context, id string, total int) (*models.GroupDeparture, error) {
	switch {
	case total == 0:
		return nil, &ValidationError{Message: "total must be a non-zero seat count"}
	case total > 0:
		dep, err := s.GroupRepo.ReserveSeats(ctx, id, total)
		if err != nil {
			if errors.Is(err, departureRepo.ErrNoSeats) {
				current, getErr := s.GroupRepo.GetByID(ctx, id)
				if getErr != nil {
					return nil, getErr
				}
				return nil, &CapacityError{Available: current.AvailableSeats(), Requested: total}
			}
			return nil, err
		}
		return dep, nil
	default:
		return s.GroupRepo.ReleaseSeats(ctx, id, -total)
	}
}

func (s *DefaultDepartureService) CreatePrivate(ctx context.Context, dep *models.PrivateDeparture) (*models.PrivateDeparture, error) {
	if dep.Expedition == "" {
		return nil, &ValidationError{Message: "expedition reference is required"}
	}

	dep.ID = utils.NewBusinessID("pdep")
	if err := s.PrivateRepo.Create(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (s *DefaultDepartureService) GetPrivate(ctx context.Context, id string) (*models.PrivateDeparture, error) {
	return s.PrivateRepo.GetByID(ctx, id)
}

func (s *DefaultDepartureService) ListPrivate(ctx context.Context) ([]models.PrivateDeparture, error) {
	return s.PrivateRepo.GetAll(ctx)
}

func (s *DefaultDepartureService) ListPrivateByExpedition(ctx context.Context, expeditionID string) ([]models.PrivateDeparture, error) {
	return s.PrivateRepo.GetByExpedition(ctx, expeditionID)
}

func (s *DefaultDepartureService) UpdatePrivate(ctx context.Context, id string, fields map[string]interface{}) (*models.PrivateDeparture, error) {
	return s.PrivateRepo.Update(ctx, id, fields)
}

func (s *DefaultDepartureService) DeletePrivate(ctx context.Context, id string) error {
	return s.PrivateRepo.Delete(ctx, id)
}

func (s *DefaultDepartureService) DeleteManyPrivate(ctx context.Context, ids []string) (int64, error) {
	return s.PrivateRepo.DeleteMany(ctx, ids)
}
