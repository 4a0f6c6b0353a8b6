package request

// VehicleCreateRequest is the customer payload for registering a vehicle.
type VehicleCreateRequest struct {
	Model       string `json:"model" binding:"required"`
	NumberPlate string `json:"number_plate" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Color       string `json:"color"`
}

// VehicleUpdateRequest is the customer payload for editing a registered
// vehicle. Updates are full replacements of the descriptive fields.
type VehicleUpdateRequest struct {
	Model       string `json:"model" binding:"required"`
	NumberPlate string `json:"number_plate" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Color       string `json:"color"`
}
