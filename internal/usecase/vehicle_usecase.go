package usecase

import (
	"context"
	"errors"
	"strings"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrInvalidVehicleInput = errors.New("invalid vehicle input")
)

// VehicleSearchFilter narrows the admin vehicle listing. Blank fields match
// everything; text fields match case-insensitive substrings, the customer id
// matches exactly.
type VehicleSearchFilter struct {
	Model          string
	NumberPlate    string
	Type           string
	Color          string
	CustomerUserID string
}

// IVehicleUseCase exposes the vehicle registry: customers manage their own
// vehicles, admins list and search across all of them.

type IVehicleUseCase interface {
	Register(ctx context.Context, customerUserID, model, numberPlate, vehicleType, color string) (entities.Vehicle, error)
	Update(ctx context.Context, customerUserID string, id int64, model, numberPlate, vehicleType, color string) (entities.Vehicle, error)
	Delete(ctx context.Context, customerUserID string, id int64) error
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	ListByCustomer(ctx context.Context, customerUserID string) ([]entities.Vehicle, error)
	ListAll(ctx context.Context) ([]entities.Vehicle, error)
	Search(ctx context.Context, filter VehicleSearchFilter) ([]entities.Vehicle, error)
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

func (u *VehicleUseCase) Register(ctx context.Context, customerUserID, model, numberPlate, vehicleType, color string) (entities.Vehicle, error) {
	customerUserID = strings.TrimSpace(customerUserID)
	model = strings.TrimSpace(model)
	numberPlate = strings.TrimSpace(numberPlate)
	vehicleType = strings.TrimSpace(vehicleType)
	if customerUserID == "" || model == "" || numberPlate == "" || vehicleType == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	v := entities.Vehicle{
		ID:             newID(),
		Model:          model,
		NumberPlate:    numberPlate,
		Type:           vehicleType,
		Color:          strings.TrimSpace(color),
		CustomerUserID: customerUserID,
	}
	return u.repo.Create(ctx, v)
}

// Update replaces the descriptive fields of one of the caller's vehicles. A
// vehicle belonging to another customer is reported as not found rather than
// leaking its existence.
func (u *VehicleUseCase) Update(ctx context.Context, customerUserID string, id int64, model, numberPlate, vehicleType, color string) (entities.Vehicle, error) {
	model = strings.TrimSpace(model)
	numberPlate = strings.TrimSpace(numberPlate)
	vehicleType = strings.TrimSpace(vehicleType)
	if model == "" || numberPlate == "" || vehicleType == "" {
		return entities.Vehicle{}, ErrInvalidVehicleInput
	}

	v, err := u.ownedVehicle(ctx, customerUserID, id)
	if err != nil {
		return entities.Vehicle{}, err
	}

	v.Model = model
	v.NumberPlate = numberPlate
	v.Type = vehicleType
	v.Color = strings.TrimSpace(color)

	updated, err := u.repo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, customerUserID string, id int64) error {
	if _, err := u.ownedVehicle(ctx, customerUserID, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *VehicleUseCase) ownedVehicle(ctx context.Context, customerUserID string, id int64) (entities.Vehicle, error) {
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 || v.CustomerUserID != strings.TrimSpace(customerUserID) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id int64) (entities.Vehicle, error) {
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) ListByCustomer(ctx context.Context, customerUserID string) ([]entities.Vehicle, error) {
	customerUserID = strings.TrimSpace(customerUserID)
	if customerUserID == "" {
		return nil, ErrInvalidVehicleInput
	}
	return u.repo.ListByCustomer(ctx, customerUserID)
}

func (u *VehicleUseCase) ListAll(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.ListAll(ctx)
}

// Search filters the registry in memory; the vehicle table is small enough
// that a scan plus substring matching beats maintaining search indexes.
func (u *VehicleUseCase) Search(ctx context.Context, filter VehicleSearchFilter) ([]entities.Vehicle, error) {
	vehicles, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	model := strings.ToLower(strings.TrimSpace(filter.Model))
	plate := strings.ToLower(strings.TrimSpace(filter.NumberPlate))
	vehicleType := strings.ToLower(strings.TrimSpace(filter.Type))
	color := strings.ToLower(strings.TrimSpace(filter.Color))
	customerID := strings.TrimSpace(filter.CustomerUserID)

	matched := make([]entities.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if model != "" && !strings.Contains(strings.ToLower(v.Model), model) {
			continue
		}
		if plate != "" && !strings.Contains(strings.ToLower(v.NumberPlate), plate) {
			continue
		}
		if vehicleType != "" && !strings.Contains(strings.ToLower(v.Type), vehicleType) {
			continue
		}
		if color != "" && !strings.Contains(strings.ToLower(v.Color), color) {
			continue
		}
		if customerID != "" && v.CustomerUserID != customerID {
			continue
		}
		matched = append(matched, v)
	}
	return matched, nil
}
