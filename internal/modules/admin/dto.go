package admin

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Stats mirrors the dashboard counter cards.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
