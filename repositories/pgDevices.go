package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type devicePgRepository struct {
	db db.Database
}

func NewDevicePgRepository(database db.Database) DeviceRepository {
	return &devicePgRepository{db: database}
}

func (r *devicePgRepository) Create(device *entities.Device) error {
	return r.db.GetDB().Create(device).Error
}

func (r *devicePgRepository) GetByID(id uint) (*entities.Device, error) {
	var device entities.Device
	err := r.db.GetDB().Where("id = ?", id).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *devicePgRepository) GetAll() ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Order("id").Find(&devices).Error
	return devices, err
}

func (r *devicePgRepository) GetByUserID(userID uint) ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id").Find(&devices).Error
	return devices, err
}

func (r *devicePgRepository) Update(device *entities.Device) error {
	return r.db.GetDB().Save(device).Error
}

func (r *devicePgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Device{}).Error
}
