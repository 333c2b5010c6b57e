package entities

import "time"

// Device status values.
const (
	DeviceOn  = "on"
	DeviceOff = "off"
)

type Device struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `json:"type"`     // category label, e.g. "thermostat"
	Location  string    `json:"location"` // room label
	Status    string    `json:"status"`   // on / off
	UserID    uint      `gorm:"index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
