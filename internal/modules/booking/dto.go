package booking

// CreateReservationRequest is the booking payload. Dates use the
// YYYY-MM-DD layout; category is optional and falls back to "any".
type CreateReservationRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Category     string `json:"category"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	CardNumber   string `json:"card_number" binding:"required"`
	CVV          string `json:"cvv" binding:"required"`
}
