package catalog

type CreateSightseeingRequest struct {
	Name        string   `json:"name" binding:"required" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price" binding:"required,gte=0" validate:"gte=0"`
	OfferPrice  *float64 `json:"offer_price" binding:"omitempty,gte=0" validate:"omitempty,gte=0"`
	Images      []string `json:"images"`
}

type UpdateSightseeingRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Duration    *string  `json:"duration"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	OfferPrice  *float64 `json:"offer_price" binding:"omitempty,gte=0"`
	Images      []string `json:"images"`
	IsActive    *bool    `json:"is_active"`
}

// Projection is the partial product view embedded in booking responses.
type Projection struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	OfferPrice *float64 `json:"offer_price"`
	Images     []string `json:"images"`
}

func (s *Sightseeing) Project() *Projection {
	return &Projection{
		ID:         s.ID,
		Name:       s.Name,
		Price:      s.Price,
		OfferPrice: s.OfferPrice,
		Images:     s.Images,
	}
}
