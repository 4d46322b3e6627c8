package catalog

import "time"

// Sightseeing is a bookable catalog product. OfferPrice, when set, takes
// precedence over Price at booking time.
type Sightseeing struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Location    string    `json:"location,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Price       float64   `json:"price" gorm:"not null" validate:"gte=0"`
	OfferPrice  *float64  `json:"offer_price"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Sightseeing) TableName() string { return "sightseeings" }

// UnitPrice returns the effective per-pax price.
func (s *Sightseeing) UnitPrice() float64 {
	if s.OfferPrice != nil {
		return *s.OfferPrice
	}
	return s.Price
}
