package repositories

import "smarthome-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	Update(user *entities.User) error
	Delete(id uint) error
}

type DeviceRepository interface {
	Create(device *entities.Device) error
	GetByID(id uint) (*entities.Device, error)
	GetAll() ([]entities.Device, error)
	GetByUserID(userID uint) ([]entities.Device, error)
	Update(device *entities.Device) error
	Delete(id uint) error
}

type SecurityLogRepository interface {
	Create(logEntry *entities.SecurityLog) error
	GetByID(id uint) (*entities.SecurityLog, error)
	GetAll() ([]entities.SecurityLog, error)
	GetByDeviceID(deviceID uint) ([]entities.SecurityLog, error)
	Delete(id uint) error
}

type EnergyConsumptionRepository interface {
	Create(record *entities.EnergyConsumption) error
	GetByID(id uint) (*entities.EnergyConsumption, error)
	GetAll() ([]entities.EnergyConsumption, error)
	GetByDeviceID(deviceID uint) ([]entities.EnergyConsumption, error)
	Update(record *entities.EnergyConsumption) error
	Delete(id uint) error
}

type HouseRepository interface {
	Create(house *entities.House) error
	GetByID(id uint) (*entities.House, error)
	GetAll() ([]entities.House, error)
	GetByUserID(userID uint) ([]entities.House, error)
	Update(house *entities.House) error
	Delete(id uint) error
}
