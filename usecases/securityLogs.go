package usecases

import (
	"errors"
	"fmt"
	"time"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type SecurityLogUseCase struct {
	SecurityLogRepo repositories.SecurityLogRepository
	DeviceRepo      repositories.DeviceRepository
}

func NewSecurityLogUseCase(securityLogRepo repositories.SecurityLogRepository, deviceRepo repositories.DeviceRepository) *SecurityLogUseCase {
	return &SecurityLogUseCase{
		SecurityLogRepo: securityLogRepo,
		DeviceRepo:      deviceRepo,
	}
}

// CreateSecurityLog appends an event after checking the device exists.
// Timestamp defaults to now when the client leaves it unset.
func (uc *SecurityLogUseCase) CreateSecurityLog(logEntry *entities.SecurityLog) error {
	if logEntry.EventType == "" {
		return errors.New("event type is required")
	}
	if _, err := uc.DeviceRepo.GetByID(logEntry.DeviceID); err != nil {
		return fmt.Errorf("%w: device %d", ErrReferentialViolation, logEntry.DeviceID)
	}
	if logEntry.Timestamp.IsZero() {
		logEntry.Timestamp = time.Now()
	}
	return uc.SecurityLogRepo.Create(logEntry)
}

// GetSecurityLog retrieves a security log entry by ID
func (uc *SecurityLogUseCase) GetSecurityLog(id uint) (*entities.SecurityLog, error) {
	logEntry, err := uc.SecurityLogRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return logEntry, nil
}

// GetAllSecurityLogs retrieves all security log entries
func (uc *SecurityLogUseCase) GetAllSecurityLogs() ([]entities.SecurityLog, error) {
	return uc.SecurityLogRepo.GetAll()
}

// DeleteSecurityLog deletes a security log entry
func (uc *SecurityLogUseCase) DeleteSecurityLog(id uint) error {
	if _, err := uc.SecurityLogRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return uc.SecurityLogRepo.Delete(id)
}
