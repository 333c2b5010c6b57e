package entities

import "time"

// EnergyConsumption records the energy used by a device over one usage
// interval. Timestamp marks the start of the interval; Consumption is kWh.
type EnergyConsumption struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    uint      `gorm:"index" json:"device_id"`
	Consumption float64   `gorm:"not null" json:"consumption"`
	Timestamp   time.Time `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}
