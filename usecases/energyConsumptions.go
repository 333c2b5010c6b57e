package usecases

import (
	"errors"
	"fmt"
	"time"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type EnergyConsumptionUseCase struct {
	EnergyRepo repositories.EnergyConsumptionRepository
	DeviceRepo repositories.DeviceRepository
}

func NewEnergyConsumptionUseCase(energyRepo repositories.EnergyConsumptionRepository, deviceRepo repositories.DeviceRepository) *EnergyConsumptionUseCase {
	return &EnergyConsumptionUseCase{
		EnergyRepo: energyRepo,
		DeviceRepo: deviceRepo,
	}
}

// CreateEnergyConsumption records a usage interval after checking the device
// exists. Consumption must be non-negative kWh.
func (uc *EnergyConsumptionUseCase) CreateEnergyConsumption(record *entities.EnergyConsumption) error {
	if record.Consumption < 0 {
		return errors.New("consumption must be non-negative")
	}
	if _, err := uc.DeviceRepo.GetByID(record.DeviceID); err != nil {
		return fmt.Errorf("%w: device %d", ErrReferentialViolation, record.DeviceID)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	return uc.EnergyRepo.Create(record)
}

// GetEnergyConsumption retrieves a consumption record by ID
func (uc *EnergyConsumptionUseCase) GetEnergyConsumption(id uint) (*entities.EnergyConsumption, error) {
	record, err := uc.EnergyRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return record, nil
}

// GetAllEnergyConsumptions retrieves all consumption records
func (uc *EnergyConsumptionUseCase) GetAllEnergyConsumptions() ([]entities.EnergyConsumption, error) {
	return uc.EnergyRepo.GetAll()
}

// UpdateEnergyConsumption updates the provided fields of a consumption record.
func (uc *EnergyConsumptionUseCase) UpdateEnergyConsumption(record *entities.EnergyConsumption) error {
	existing, err := uc.EnergyRepo.GetByID(record.ID)
	if err != nil {
		return asNotFound(err)
	}

	if record.Consumption < 0 {
		return errors.New("consumption must be non-negative")
	}
	if record.Consumption != 0 {
		existing.Consumption = record.Consumption
	}
	if !record.Timestamp.IsZero() {
		existing.Timestamp = record.Timestamp
	}
	if record.DeviceID != 0 && record.DeviceID != existing.DeviceID {
		if _, err := uc.DeviceRepo.GetByID(record.DeviceID); err != nil {
			return fmt.Errorf("%w: device %d", ErrReferentialViolation, record.DeviceID)
		}
		existing.DeviceID = record.DeviceID
	}

	if err := uc.EnergyRepo.Update(existing); err != nil {
		return err
	}
	*record = *existing
	return nil
}

// DeleteEnergyConsumption deletes a consumption record
func (uc *EnergyConsumptionUseCase) DeleteEnergyConsumption(id uint) error {
	if _, err := uc.EnergyRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return uc.EnergyRepo.Delete(id)
}
