package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"smarthome-server/db"
	"smarthome-server/entities"
	"smarthome-server/repositories"
	"smarthome-server/usecases"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture bundles a fresh in-memory database with every repository and
// usecase the services need.
type fixture struct {
	db        db.Database
	users     repositories.UserRepository
	devices   repositories.DeviceRepository
	logs      repositories.SecurityLogRepository
	energy    repositories.EnergyConsumptionRepository
	houses    repositories.HouseRepository
	userUC    *usecases.UserUseCase
	deviceUC  *usecases.DeviceUseCase
	logUC     *usecases.SecurityLogUseCase
	energyUC  *usecases.EnergyConsumptionUseCase
	houseUC   *usecases.HouseUseCase
	analytics *AnalyticsService
}

var fixtureSeq atomic.Int64

func newFixture(t *testing.T) *fixture {
	t.Helper()

	// Each fixture gets its own named in-memory database; the counter keeps
	// two fixtures within one test from sharing state.
	name := fmt.Sprintf("%s_%d", strings.ReplaceAll(t.Name(), "/", "_"), fixtureSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	database := &db.GormDatabase{DB: gdb}
	f := &fixture{db: database}
	f.users = repositories.NewUserPgRepository(database)
	f.devices = repositories.NewDevicePgRepository(database)
	f.logs = repositories.NewSecurityLogPgRepository(database)
	f.energy = repositories.NewEnergyConsumptionPgRepository(database)
	f.houses = repositories.NewHousePgRepository(database)
	f.userUC = usecases.NewUserUseCase(f.users, f.devices, f.houses)
	f.deviceUC = usecases.NewDeviceUseCase(f.devices, f.users, f.logs, f.energy)
	f.logUC = usecases.NewSecurityLogUseCase(f.logs, f.devices)
	f.energyUC = usecases.NewEnergyConsumptionUseCase(f.energy, f.devices)
	f.houseUC = usecases.NewHouseUseCase(f.houses, f.users)
	f.analytics = NewAnalyticsService(f.users, f.devices, f.logs, f.energy, f.houses)
	return f
}

func (f *fixture) addUser(t *testing.T, name string) entities.User {
	t.Helper()
	user := entities.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, f.userUC.CreateUser(&user, "secret"))
	return user
}

func (f *fixture) addDevice(t *testing.T, name string, userID uint) entities.Device {
	t.Helper()
	device := entities.Device{Name: name, Type: "light", Location: "hallway", UserID: userID}
	require.NoError(t, f.deviceUC.CreateDevice(&device))
	return device
}

func (f *fixture) addActivation(t *testing.T, deviceID uint, hour int) {
	t.Helper()
	logEntry := entities.SecurityLog{
		DeviceID:  deviceID,
		EventType: entities.EventActivation,
		Timestamp: time.Date(2025, 6, 1, hour, 15, 0, 0, time.UTC),
	}
	require.NoError(t, f.logUC.CreateSecurityLog(&logEntry))
}

func (f *fixture) addConsumption(t *testing.T, deviceID uint, kwh float64) {
	t.Helper()
	record := entities.EnergyConsumption{
		DeviceID:    deviceID,
		Consumption: kwh,
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, f.energyUC.CreateEnergyConsumption(&record))
}

func (f *fixture) addHouse(t *testing.T, userID uint, area float64) entities.House {
	t.Helper()
	house := entities.House{UserID: userID, Area: area, OccupantCount: 2}
	require.NoError(t, f.houseUC.CreateHouse(&house))
	return house
}
