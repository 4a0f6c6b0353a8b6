package response

import "vexadrive/internal/domain/entities"

type VehicleResponse struct {
	ID          int64  `json:"id"`
	Model       string `json:"model"`
	NumberPlate string `json:"number_plate"`
	Type        string `json:"type"`
	Color       string `json:"color"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Model:       v.Model,
		NumberPlate: v.NumberPlate,
		Type:        v.Type,
		Color:       v.Color,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVehicle(v))
	}
	return out
}
