package services

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"smarthome-server/entities"
	"smarthome-server/usecases"
)

// Seeder fills an empty store with internally consistent demo data. All
// randomness flows from the injected seed so a given seed always produces
// the same shapes, and Now is overridable so tests can pin the time window.
type Seeder struct {
	Users   *usecases.UserUseCase
	Devices *usecases.DeviceUseCase
	Logs    *usecases.SecurityLogUseCase
	Energy  *usecases.EnergyConsumptionUseCase
	Houses  *usecases.HouseUseCase

	Now func() time.Time

	rng *rand.Rand
}

// SeedSummary reports what a seeding run created.
type SeedSummary struct {
	Users        int `json:"users"`
	Devices      int `json:"devices"`
	SecurityLogs int `json:"security_logs"`
	Consumptions int `json:"consumptions"`
	Houses       int `json:"houses"`
}

func NewSeeder(seed int64, users *usecases.UserUseCase, devices *usecases.DeviceUseCase,
	logs *usecases.SecurityLogUseCase, energy *usecases.EnergyConsumptionUseCase,
	houses *usecases.HouseUseCase) *Seeder {
	return &Seeder{
		Users:   users,
		Devices: devices,
		Logs:    logs,
		Energy:  energy,
		Houses:  houses,
		Now:     time.Now,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

var (
	deviceTypes   = []string{"light", "thermostat", "camera", "lock", "plug"}
	roomLocations = []string{"living room", "kitchen", "bedroom", "hallway", "garage"}
)

// Run seeds the store. User generation is skipped when users already exist,
// and every dependent generator no-ops on an empty parent set rather than
// failing, so re-running against a populated store is safe.
func (s *Seeder) Run() (SeedSummary, error) {
	var summary SeedSummary

	users, err := s.seedUsers()
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)

	devices, err := s.seedDevices(users)
	if err != nil {
		return summary, err
	}
	summary.Devices = len(devices)

	summary.SecurityLogs, err = s.seedSecurityLogs(devices)
	if err != nil {
		return summary, err
	}

	summary.Consumptions, err = s.seedEnergyConsumptions(devices)
	if err != nil {
		return summary, err
	}

	summary.Houses, err = s.seedHouses(users)
	if err != nil {
		return summary, err
	}

	log.Printf("seeded %d users, %d devices, %d logs, %d consumptions, %d houses",
		summary.Users, summary.Devices, summary.SecurityLogs, summary.Consumptions, summary.Houses)
	return summary, nil
}

func (s *Seeder) seedUsers() ([]entities.User, error) {
	existing, err := s.Users.GetAllUsers()
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	users := make([]entities.User, 0, 10)
	for i := 1; i <= 10; i++ {
		user := entities.User{
			Name:  fmt.Sprintf("Demo User %02d", i),
			Email: fmt.Sprintf("user%02d@smarthome.local", i),
			Phone: fmt.Sprintf("555-%04d", s.rng.Intn(10000)),
		}
		if err := s.Users.CreateUser(&user, fmt.Sprintf("demo-pass-%02d", i)); err != nil {
			return nil, fmt.Errorf("seed user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedDevices(users []entities.User) ([]entities.Device, error) {
	// Without owners there is nothing valid to attach devices to.
	if len(users) == 0 {
		return nil, nil
	}

	devices := make([]entities.Device, 0, 10)
	for i := 1; i <= 10; i++ {
		status := entities.DeviceOff
		if s.rng.Intn(2) == 1 {
			status = entities.DeviceOn
		}
		device := entities.Device{
			Name:     fmt.Sprintf("device%02d", i),
			Type:     deviceTypes[s.rng.Intn(len(deviceTypes))],
			Location: roomLocations[s.rng.Intn(len(roomLocations))],
			Status:   status,
			UserID:   users[s.rng.Intn(len(users))].ID,
		}
		if err := s.Devices.CreateDevice(&device); err != nil {
			return nil, fmt.Errorf("seed device %d: %w", i, err)
		}
		devices = append(devices, device)
	}
	return devices, nil
}

func (s *Seeder) seedSecurityLogs(devices []entities.Device) (int, error) {
	if len(devices) == 0 {
		return 0, nil
	}

	now := s.Now()
	created := 0
	for i := 0; i < 60; i++ {
		device := devices[s.rng.Intn(len(devices))]
		offset := time.Duration(s.rng.Int63n(int64(24 * time.Hour)))
		logEntry := entities.SecurityLog{
			DeviceID:    device.ID,
			EventType:   entities.EventActivation,
			Timestamp:   now.Add(-offset),
			Description: fmt.Sprintf("%s switched on in the %s", device.Name, device.Location),
		}
		if err := s.Logs.CreateSecurityLog(&logEntry); err != nil {
			return created, fmt.Errorf("seed security log %d: %w", i, err)
		}
		created++
	}
	return created, nil
}

// seedEnergyConsumptions writes 100 batches. Each batch picks 3-4 distinct
// devices sharing one start time so the overlap-sensitive analytics have
// simultaneous usage to aggregate.
func (s *Seeder) seedEnergyConsumptions(devices []entities.Device) (int, error) {
	if len(devices) == 0 {
		return 0, nil
	}

	now := s.Now()
	created := 0
	for batch := 0; batch < 100; batch++ {
		start := now.Add(-time.Duration(s.rng.Int63n(int64(7 * 24 * time.Hour))))
		size := 3 + s.rng.Intn(2)
		if size > len(devices) {
			size = len(devices)
		}
		for _, idx := range s.rng.Perm(len(devices))[:size] {
			record := entities.EnergyConsumption{
				DeviceID:    devices[idx].ID,
				Consumption: 0.1 + s.rng.Float64()*3.4,
				Timestamp:   start,
			}
			if err := s.Energy.CreateEnergyConsumption(&record); err != nil {
				return created, fmt.Errorf("seed consumption batch %d: %w", batch, err)
			}
			created++
		}
	}
	return created, nil
}

func (s *Seeder) seedHouses(users []entities.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	created := 0
	for i := 0; i < 10; i++ {
		house := entities.House{
			UserID:        users[s.rng.Intn(len(users))].ID,
			Area:          30 + s.rng.Float64()*150, // spans all three size bands
			OccupantCount: 1 + s.rng.Intn(5),
		}
		if err := s.Houses.CreateHouse(&house); err != nil {
			return created, fmt.Errorf("seed house %d: %w", i, err)
		}
		created++
	}
	return created, nil
}
