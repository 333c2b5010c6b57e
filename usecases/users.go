package usecases

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type UserUseCase struct {
	UserRepo   repositories.UserRepository
	DeviceRepo repositories.DeviceRepository
	HouseRepo  repositories.HouseRepository
}

func NewUserUseCase(userRepo repositories.UserRepository, deviceRepo repositories.DeviceRepository, houseRepo repositories.HouseRepository) *UserUseCase {
	return &UserUseCase{
		UserRepo:   userRepo,
		DeviceRepo: deviceRepo,
		HouseRepo:  houseRepo,
	}
}

// HashPassword creates the SHA-256 hex digest stored for a user credential.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// CreateUser creates a new user, hashing the supplied plaintext password.
func (uc *UserUseCase) CreateUser(user *entities.User, password string) error {
	if user.Name == "" {
		return errors.New("user name is required")
	}
	if user.Email == "" {
		return errors.New("user email is required")
	}
	if password == "" {
		return errors.New("user password is required")
	}
	user.Password = HashPassword(password)
	return uc.UserRepo.Create(user)
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return user, nil
}

// GetAllUsers retrieves all users
func (uc *UserUseCase) GetAllUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}

// UpdateUser updates the provided fields of an existing user.
func (uc *UserUseCase) UpdateUser(user *entities.User, password string) error {
	existing, err := uc.UserRepo.GetByID(user.ID)
	if err != nil {
		return asNotFound(err)
	}

	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Phone != "" {
		existing.Phone = user.Phone
	}
	if user.Email != "" {
		existing.Email = user.Email
	}
	if password != "" {
		existing.Password = HashPassword(password)
	}

	if err := uc.UserRepo.Update(existing); err != nil {
		return err
	}
	*user = *existing
	return nil
}

// DeleteUser deletes a user. Owned devices and houses are left in place;
// the system tolerates orphaned references instead of cascading.
func (uc *UserUseCase) DeleteUser(id uint) error {
	if _, err := uc.UserRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return uc.UserRepo.Delete(id)
}

// Authenticate checks an email/password pair and returns the matching user.
func (uc *UserUseCase) Authenticate(email, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if user.Password != HashPassword(password) {
		return nil, fmt.Errorf("invalid email or password")
	}
	return user, nil
}

// GetUserDevices retrieves all devices owned by a user.
func (uc *UserUseCase) GetUserDevices(userID uint) ([]entities.Device, error) {
	if _, err := uc.UserRepo.GetByID(userID); err != nil {
		return nil, asNotFound(err)
	}
	return uc.DeviceRepo.GetByUserID(userID)
}

// GetUserHouses retrieves all houses owned by a user.
func (uc *UserUseCase) GetUserHouses(userID uint) ([]entities.House, error) {
	if _, err := uc.UserRepo.GetByID(userID); err != nil {
		return nil, asNotFound(err)
	}
	return uc.HouseRepo.GetByUserID(userID)
}
