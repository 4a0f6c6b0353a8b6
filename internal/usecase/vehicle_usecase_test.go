package usecase

import (
	"context"
	"errors"
	"testing"

	"vexadrive/internal/domain/entities"
	mock_interfaces "vexadrive/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Register(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.Register(context.Background(), "cust-1", "  ", "ABC1234", "car", "blue")
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID == 0 {
					t.Fatalf("expected a minted id")
				}
				if v.CustomerUserID != "cust-1" || v.Model != "Corolla" || v.NumberPlate != "ABC1234" {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				return v, nil
			})

		got, err := uc.Register(context.Background(), "cust-1", " Corolla ", "ABC1234", "car", "blue")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Model != "Corolla" {
			t.Fatalf("expected trimmed model, got %q", got.Model)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		_, err := uc.Update(context.Background(), "cust-1", 7, "  ", "ABC1234", "car", "blue")
		if !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", 7, "Corolla", "ABC1234", "car", "blue")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("foreign vehicle reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, CustomerUserID: "cust-2"}, nil)

		_, err := uc.Update(context.Background(), "cust-1", 7, "Corolla", "ABC1234", "car", "blue")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("replaces descriptive fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, CustomerUserID: "cust-1", Model: "Corolla", NumberPlate: "ABC1234"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID != 7 || v.CustomerUserID != "cust-1" {
					t.Fatalf("identity fields must be preserved: %+v", v)
				}
				if v.Model != "Civic" || v.NumberPlate != "XYZ5678" || v.Type != "car" || v.Color != "red" {
					t.Fatalf("unexpected vehicle: %+v", v)
				}
				return v, nil
			})

		got, err := uc.Update(context.Background(), "cust-1", 7, " Civic ", "XYZ5678", "car", " red ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Model != "Civic" {
			t.Fatalf("expected updated model, got %q", got.Model)
		}
	})

	t.Run("row vanished before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, CustomerUserID: "cust-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, nil)

		_, err := uc.Update(context.Background(), "cust-1", 7, "Civic", "XYZ5678", "car", "")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestVehicleUseCase_Delete(t *testing.T) {
	t.Run("foreign vehicle reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, CustomerUserID: "cust-2"}, nil)

		if err := uc.Delete(context.Background(), "cust-1", 7); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, CustomerUserID: "cust-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

		if err := uc.Delete(context.Background(), "cust-1", 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Search(t *testing.T) {
	fleet := []entities.Vehicle{
		{ID: 1, Model: "Corolla", NumberPlate: "ABC1234", Type: "Car", Color: "Blue", CustomerUserID: "cust-1"},
		{ID: 2, Model: "CB500", NumberPlate: "XYZ5678", Type: "Motorcycle", Color: "Red", CustomerUserID: "cust-1"},
		{ID: 3, Model: "Hilux", NumberPlate: "DEF9012", Type: "Truck", Color: "blue", CustomerUserID: "cust-2"},
	}

	cases := []struct {
		name   string
		filter VehicleSearchFilter
		want   []int64
	}{
		{"no filter matches all", VehicleSearchFilter{}, []int64{1, 2, 3}},
		{"type is case-insensitive substring", VehicleSearchFilter{Type: "motor"}, []int64{2}},
		{"plate substring", VehicleSearchFilter{NumberPlate: "xyz"}, []int64{2}},
		{"color matches both cases", VehicleSearchFilter{Color: "BLUE"}, []int64{1, 3}},
		{"customer id is exact", VehicleSearchFilter{CustomerUserID: "cust-1"}, []int64{1, 2}},
		{"filters combine", VehicleSearchFilter{Color: "blue", CustomerUserID: "cust-2"}, []int64{3}},
		{"no match", VehicleSearchFilter{Model: "fusca"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
			uc := NewVehicleUseCase(repo)

			repo.EXPECT().ListAll(gomock.Any()).Return(fleet, nil)

			got, err := uc.Search(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d vehicles, got %+v", len(tc.want), got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected vehicle %d at position %d, got %+v", id, i, got)
				}
			}
		})
	}
}

func TestVehicleUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{}, nil)

		if _, err := uc.GetByID(context.Background(), 7); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Vehicle{ID: 7, Model: "Corolla"}, nil)

		got, err := uc.GetByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 7 {
			t.Fatalf("unexpected vehicle: %+v", got)
		}
	})
}

func TestVehicleUseCase_ListByCustomer(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil)
		if _, err := uc.ListByCustomer(context.Background(), "  "); !errors.Is(err, ErrInvalidVehicleInput) {
			t.Fatalf("expected ErrInvalidVehicleInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo)

		repo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]entities.Vehicle{{ID: 7}}, nil)

		got, err := uc.ListByCustomer(context.Background(), "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("unexpected vehicles: %+v", got)
		}
	})
}
