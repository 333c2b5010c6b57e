package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type securityLogPgRepository struct {
	db db.Database
}

func NewSecurityLogPgRepository(database db.Database) SecurityLogRepository {
	return &securityLogPgRepository{db: database}
}

func (r *securityLogPgRepository) Create(logEntry *entities.SecurityLog) error {
	return r.db.GetDB().Create(logEntry).Error
}

func (r *securityLogPgRepository) GetByID(id uint) (*entities.SecurityLog, error) {
	var logEntry entities.SecurityLog
	err := r.db.GetDB().Where("id = ?", id).First(&logEntry).Error
	if err != nil {
		return nil, err
	}
	return &logEntry, nil
}

func (r *securityLogPgRepository) GetAll() ([]entities.SecurityLog, error) {
	var logs []entities.SecurityLog
	err := r.db.GetDB().Order("id").Find(&logs).Error
	return logs, err
}

func (r *securityLogPgRepository) GetByDeviceID(deviceID uint) ([]entities.SecurityLog, error) {
	var logs []entities.SecurityLog
	err := r.db.GetDB().Where("device_id = ?", deviceID).Order("timestamp").Find(&logs).Error
	return logs, err
}

func (r *securityLogPgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.SecurityLog{}).Error
}
