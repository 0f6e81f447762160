package catalog

import cat "dogstudio/internal/catalog"

type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Duration    string   `json:"duration"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features,omitempty"`
	IsAddon     bool     `json:"is_addon,omitempty"`
}

func toServiceResponse(s cat.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.BasePrice,
		Duration:    s.Duration,
		Icon:        s.Icon.String(),
		Features:    s.Features,
		IsAddon:     s.IsAddon,
	}
}
