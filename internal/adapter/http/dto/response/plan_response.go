package response

import (
	"rede_saude/internal/domain/entities"
)

type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features,omitempty"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Features: p.Features,
	}
}

func FromPlans(plans []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}

type AddressResponse struct {
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		Street:     a.Street,
		District:   a.District,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
	}
}
