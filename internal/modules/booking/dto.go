package booking

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PetName      string `json:"pet_name"`
	PetType      string `json:"pet_type"`
	PetSize      string `json:"pet_size"`
	ServiceID    string `json:"service_id"`
	BookingDate  string `json:"booking_date"`
	TimeSlot     string `json:"time_slot"`
	Notes        string `json:"notes"`
}

type BookedSlotsResponse struct {
	Date        string   `json:"date"`
	BookedSlots []string `json:"booked_slots"`
}
