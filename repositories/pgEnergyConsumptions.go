package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type energyConsumptionPgRepository struct {
	db db.Database
}

func NewEnergyConsumptionPgRepository(database db.Database) EnergyConsumptionRepository {
	return &energyConsumptionPgRepository{db: database}
}

func (r *energyConsumptionPgRepository) Create(record *entities.EnergyConsumption) error {
	return r.db.GetDB().Create(record).Error
}

func (r *energyConsumptionPgRepository) GetByID(id uint) (*entities.EnergyConsumption, error) {
	var record entities.EnergyConsumption
	err := r.db.GetDB().Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *energyConsumptionPgRepository) GetAll() ([]entities.EnergyConsumption, error) {
	var records []entities.EnergyConsumption
	err := r.db.GetDB().Order("id").Find(&records).Error
	return records, err
}

func (r *energyConsumptionPgRepository) GetByDeviceID(deviceID uint) ([]entities.EnergyConsumption, error) {
	var records []entities.EnergyConsumption
	err := r.db.GetDB().Where("device_id = ?", deviceID).Order("timestamp").Find(&records).Error
	return records, err
}

func (r *energyConsumptionPgRepository) Update(record *entities.EnergyConsumption) error {
	return r.db.GetDB().Save(record).Error
}

func (r *energyConsumptionPgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.EnergyConsumption{}).Error
}
