package entities

import "time"

// EventActivation marks a security log entry that signals a device being
// switched on. The peak-hour analytics only consider these entries.
const EventActivation = "activation"

// SecurityLog is an append-only event record attached to a device. The
// device reference is not enforced after the fact: deleting a device leaves
// its logs behind, and readers must tolerate the orphaned DeviceID.
type SecurityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    uint      `gorm:"index" json:"device_id"`
	EventType   string    `gorm:"not null" json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
