package entities

import "time"

// House size categories derived from area.
const (
	HouseSmall  = "small"
	HouseMedium = "medium"
	HouseLarge  = "large"
)

// House belongs to a user. Type is derived from Area on every write and is
// never accepted from clients.
type House struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	Area          float64   `gorm:"not null" json:"area"`
	OccupantCount int       `gorm:"not null" json:"occupant_count"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClassifyHouseArea maps an area to its size category using half-open bands:
// small for area < 60, medium for 60 <= area < 120, large for area >= 120.
func ClassifyHouseArea(area float64) string {
	switch {
	case area < 60:
		return HouseSmall
	case area < 120:
		return HouseMedium
	default:
		return HouseLarge
	}
}
