package entities

// Vehicle is a customer-owned vehicle service requests are raised against.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (customer_user_id-index): customer_user_id

type Vehicle struct {
	ID             int64  `json:"id"`
	Model          string `json:"model"`
	NumberPlate    string `json:"number_plate"`
	Type           string `json:"type"`
	Color          string `json:"color"`
	CustomerUserID string `json:"customer_user_id"`
}
