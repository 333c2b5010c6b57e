package usecases

import (
	"errors"
	"fmt"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type DeviceUseCase struct {
	DeviceRepo      repositories.DeviceRepository
	UserRepo        repositories.UserRepository
	SecurityLogRepo repositories.SecurityLogRepository
	EnergyRepo      repositories.EnergyConsumptionRepository
}

func NewDeviceUseCase(deviceRepo repositories.DeviceRepository, userRepo repositories.UserRepository,
	securityLogRepo repositories.SecurityLogRepository, energyRepo repositories.EnergyConsumptionRepository) *DeviceUseCase {
	return &DeviceUseCase{
		DeviceRepo:      deviceRepo,
		UserRepo:        userRepo,
		SecurityLogRepo: securityLogRepo,
		EnergyRepo:      energyRepo,
	}
}

// CreateDevice creates a new device after checking the owner exists.
func (uc *DeviceUseCase) CreateDevice(device *entities.Device) error {
	if device.Name == "" {
		return errors.New("device name is required")
	}
	if device.Type == "" {
		return errors.New("device type is required")
	}
	if device.Status == "" {
		device.Status = entities.DeviceOff
	}
	if _, err := uc.UserRepo.GetByID(device.UserID); err != nil {
		return fmt.Errorf("%w: user %d", ErrReferentialViolation, device.UserID)
	}
	return uc.DeviceRepo.Create(device)
}

// GetDevice retrieves a device by ID
func (uc *DeviceUseCase) GetDevice(id uint) (*entities.Device, error) {
	device, err := uc.DeviceRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return device, nil
}

// GetAllDevices retrieves all devices
func (uc *DeviceUseCase) GetAllDevices() ([]entities.Device, error) {
	return uc.DeviceRepo.GetAll()
}

// UpdateDevice updates the provided fields of an existing device.
func (uc *DeviceUseCase) UpdateDevice(device *entities.Device) error {
	existing, err := uc.DeviceRepo.GetByID(device.ID)
	if err != nil {
		return asNotFound(err)
	}

	if device.Name != "" {
		existing.Name = device.Name
	}
	if device.Type != "" {
		existing.Type = device.Type
	}
	if device.Location != "" {
		existing.Location = device.Location
	}
	if device.Status != "" {
		existing.Status = device.Status
	}
	if device.UserID != 0 && device.UserID != existing.UserID {
		if _, err := uc.UserRepo.GetByID(device.UserID); err != nil {
			return fmt.Errorf("%w: user %d", ErrReferentialViolation, device.UserID)
		}
		existing.UserID = device.UserID
	}

	if err := uc.DeviceRepo.Update(existing); err != nil {
		return err
	}
	*device = *existing
	return nil
}

// DeleteDevice deletes a device. Its security logs and consumption records
// are kept; aggregations tolerate the orphaned rows.
func (uc *DeviceUseCase) DeleteDevice(id uint) error {
	if _, err := uc.DeviceRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return uc.DeviceRepo.Delete(id)
}

// GetDeviceSecurityLogs retrieves all security logs for a device.
func (uc *DeviceUseCase) GetDeviceSecurityLogs(deviceID uint) ([]entities.SecurityLog, error) {
	if _, err := uc.DeviceRepo.GetByID(deviceID); err != nil {
		return nil, asNotFound(err)
	}
	return uc.SecurityLogRepo.GetByDeviceID(deviceID)
}

// GetDeviceEnergyConsumptions retrieves all consumption records for a device.
func (uc *DeviceUseCase) GetDeviceEnergyConsumptions(deviceID uint) ([]entities.EnergyConsumption, error) {
	if _, err := uc.DeviceRepo.GetByID(deviceID); err != nil {
		return nil, asNotFound(err)
	}
	return uc.EnergyRepo.GetByDeviceID(deviceID)
}
