package usecases

import (
	"errors"
	"fmt"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

type HouseUseCase struct {
	HouseRepo repositories.HouseRepository
	UserRepo  repositories.UserRepository
}

func NewHouseUseCase(houseRepo repositories.HouseRepository, userRepo repositories.UserRepository) *HouseUseCase {
	return &HouseUseCase{
		HouseRepo: houseRepo,
		UserRepo:  userRepo,
	}
}

// CreateHouse creates a house. The size category is derived from the area
// here, on the write path, so no reader ever sees a stale or missing type.
func (uc *HouseUseCase) CreateHouse(house *entities.House) error {
	if house.Area <= 0 {
		return errors.New("house area must be positive")
	}
	if house.OccupantCount <= 0 {
		return errors.New("occupant count must be positive")
	}
	if _, err := uc.UserRepo.GetByID(house.UserID); err != nil {
		return fmt.Errorf("%w: user %d", ErrReferentialViolation, house.UserID)
	}
	house.Type = entities.ClassifyHouseArea(house.Area)
	return uc.HouseRepo.Create(house)
}

// GetHouse retrieves a house by ID
func (uc *HouseUseCase) GetHouse(id uint) (*entities.House, error) {
	house, err := uc.HouseRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return house, nil
}

// GetAllHouses retrieves all houses
func (uc *HouseUseCase) GetAllHouses() ([]entities.House, error) {
	return uc.HouseRepo.GetAll()
}

// UpdateHouse updates the provided fields of a house. Any area change
// re-derives the size category before the record is saved.
func (uc *HouseUseCase) UpdateHouse(house *entities.House) error {
	existing, err := uc.HouseRepo.GetByID(house.ID)
	if err != nil {
		return asNotFound(err)
	}

	if house.Area != 0 {
		if house.Area < 0 {
			return errors.New("house area must be positive")
		}
		existing.Area = house.Area
	}
	if house.OccupantCount != 0 {
		if house.OccupantCount < 0 {
			return errors.New("occupant count must be positive")
		}
		existing.OccupantCount = house.OccupantCount
	}
	if house.UserID != 0 && house.UserID != existing.UserID {
		if _, err := uc.UserRepo.GetByID(house.UserID); err != nil {
			return fmt.Errorf("%w: user %d", ErrReferentialViolation, house.UserID)
		}
		existing.UserID = house.UserID
	}

	// Always recompute; the type field is never client-settable.
	existing.Type = entities.ClassifyHouseArea(existing.Area)

	if err := uc.HouseRepo.Update(existing); err != nil {
		return err
	}
	*house = *existing
	return nil
}

// DeleteHouse deletes a house
func (uc *HouseUseCase) DeleteHouse(id uint) error {
	if _, err := uc.HouseRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return uc.HouseRepo.Delete(id)
}
