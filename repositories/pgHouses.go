package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type housePgRepository struct {
	db db.Database
}

func NewHousePgRepository(database db.Database) HouseRepository {
	return &housePgRepository{db: database}
}

func (r *housePgRepository) Create(house *entities.House) error {
	return r.db.GetDB().Create(house).Error
}

func (r *housePgRepository) GetByID(id uint) (*entities.House, error) {
	var house entities.House
	err := r.db.GetDB().Where("id = ?", id).First(&house).Error
	if err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *housePgRepository) GetAll() ([]entities.House, error) {
	var houses []entities.House
	err := r.db.GetDB().Order("id").Find(&houses).Error
	return houses, err
}

func (r *housePgRepository) GetByUserID(userID uint) ([]entities.House, error) {
	var houses []entities.House
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id").Find(&houses).Error
	return houses, err
}

func (r *housePgRepository) Update(house *entities.House) error {
	return r.db.GetDB().Save(house).Error
}

func (r *housePgRepository) Delete(id uint) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.House{}).Error
}
