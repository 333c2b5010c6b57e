package usecases

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"smarthome-server/db"
	"smarthome-server/entities"
	"smarthome-server/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	users   *UserUseCase
	devices *DeviceUseCase
	logs    *SecurityLogUseCase
	energy  *EnergyConsumptionUseCase
	houses  *HouseUseCase

	logRepo    repositories.SecurityLogRepository
	energyRepo repositories.EnergyConsumptionRepository
	deviceRepo repositories.DeviceRepository
}

var envSeq atomic.Int64

func newEnv(t *testing.T) *env {
	t.Helper()

	name := fmt.Sprintf("%s_%d", strings.ReplaceAll(t.Name(), "/", "_"), envSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	database := &db.GormDatabase{DB: gdb}
	userRepo := repositories.NewUserPgRepository(database)
	deviceRepo := repositories.NewDevicePgRepository(database)
	logRepo := repositories.NewSecurityLogPgRepository(database)
	energyRepo := repositories.NewEnergyConsumptionPgRepository(database)
	houseRepo := repositories.NewHousePgRepository(database)

	return &env{
		users:      NewUserUseCase(userRepo, deviceRepo, houseRepo),
		devices:    NewDeviceUseCase(deviceRepo, userRepo, logRepo, energyRepo),
		logs:       NewSecurityLogUseCase(logRepo, deviceRepo),
		energy:     NewEnergyConsumptionUseCase(energyRepo, deviceRepo),
		houses:     NewHouseUseCase(houseRepo, userRepo),
		logRepo:    logRepo,
		energyRepo: energyRepo,
		deviceRepo: deviceRepo,
	}
}

func (e *env) addUser(t *testing.T, name string) entities.User {
	t.Helper()
	user := entities.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, e.users.CreateUser(&user, "secret"))
	return user
}

func (e *env) addDevice(t *testing.T, name string, userID uint) entities.Device {
	t.Helper()
	device := entities.Device{Name: name, Type: "camera", UserID: userID}
	require.NoError(t, e.devices.CreateDevice(&device))
	return device
}

func TestCreateUserHashesPassword(t *testing.T) {
	e := newEnv(t)
	user := entities.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, e.users.CreateUser(&user, "hunter2"))

	stored, err := e.users.GetUser(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.Equal(t, HashPassword("hunter2"), stored.Password)
}

func TestAuthenticate(t *testing.T) {
	e := newEnv(t)
	user := entities.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, e.users.CreateUser(&user, "hunter2"))

	authed, err := e.users.Authenticate("alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = e.users.Authenticate("alice@example.com", "wrong")
	assert.Error(t, err)

	_, err = e.users.Authenticate("nobody@example.com", "hunter2")
	assert.Error(t, err)
}

func TestCreateDeviceRequiresExistingUser(t *testing.T) {
	e := newEnv(t)
	device := entities.Device{Name: "cam", Type: "camera", UserID: 1234}
	err := e.devices.CreateDevice(&device)
	assert.ErrorIs(t, err, ErrReferentialViolation)
}

func TestCreateSecurityLogRequiresExistingDevice(t *testing.T) {
	e := newEnv(t)
	logEntry := entities.SecurityLog{DeviceID: 99, EventType: entities.EventActivation}
	err := e.logs.CreateSecurityLog(&logEntry)
	assert.ErrorIs(t, err, ErrReferentialViolation)
}

func TestCreateEnergyConsumptionValidation(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")
	device := e.addDevice(t, "plug", owner.ID)

	record := entities.EnergyConsumption{DeviceID: device.ID, Consumption: -1}
	assert.Error(t, e.energy.CreateEnergyConsumption(&record))

	record = entities.EnergyConsumption{DeviceID: 777, Consumption: 1}
	assert.ErrorIs(t, e.energy.CreateEnergyConsumption(&record), ErrReferentialViolation)

	record = entities.EnergyConsumption{DeviceID: device.ID, Consumption: 1.5}
	require.NoError(t, e.energy.CreateEnergyConsumption(&record))
	assert.False(t, record.Timestamp.IsZero(), "timestamp defaults to now")
}

func TestGetMissingDeviceIsNotFound(t *testing.T) {
	e := newEnv(t)
	_, err := e.devices.GetDevice(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateHouseDerivesType(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")

	cases := []struct {
		area float64
		want string
	}{
		{area: 45, want: entities.HouseSmall},
		{area: 60, want: entities.HouseMedium},
		{area: 120, want: entities.HouseLarge},
	}
	for _, tc := range cases {
		house := entities.House{UserID: owner.ID, Area: tc.area, OccupantCount: 2}
		require.NoError(t, e.houses.CreateHouse(&house))
		assert.Equal(t, tc.want, house.Type, "area %v", tc.area)

		stored, err := e.houses.GetHouse(house.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, stored.Type)
	}
}

func TestCreateHouseIgnoresClientType(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")

	house := entities.House{UserID: owner.ID, Area: 200, OccupantCount: 3, Type: "mansion"}
	require.NoError(t, e.houses.CreateHouse(&house))
	assert.Equal(t, entities.HouseLarge, house.Type)
}

func TestCreateHouseRequiresExistingUser(t *testing.T) {
	e := newEnv(t)
	house := entities.House{UserID: 55, Area: 80, OccupantCount: 2}
	assert.ErrorIs(t, e.houses.CreateHouse(&house), ErrReferentialViolation)
}

func TestUpdateHouseAreaReclassifies(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")
	house := entities.House{UserID: owner.ID, Area: 50, OccupantCount: 2}
	require.NoError(t, e.houses.CreateHouse(&house))
	require.Equal(t, entities.HouseSmall, house.Type)

	update := entities.House{ID: house.ID, Area: 130}
	require.NoError(t, e.houses.UpdateHouse(&update))
	assert.Equal(t, entities.HouseLarge, update.Type)

	// the stored record is never observable with a stale type
	stored, err := e.houses.GetHouse(house.ID)
	require.NoError(t, err)
	assert.Equal(t, 130.0, stored.Area)
	assert.Equal(t, entities.HouseLarge, stored.Type)
}

func TestUpdateHouseWithoutAreaKeepsType(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")
	house := entities.House{UserID: owner.ID, Area: 90, OccupantCount: 2}
	require.NoError(t, e.houses.CreateHouse(&house))

	update := entities.House{ID: house.ID, OccupantCount: 5}
	require.NoError(t, e.houses.UpdateHouse(&update))

	stored, err := e.houses.GetHouse(house.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.OccupantCount)
	assert.Equal(t, 90.0, stored.Area)
	assert.Equal(t, entities.HouseMedium, stored.Type)
}

func TestDeleteDeviceDoesNotCascade(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")
	device := e.addDevice(t, "lock", owner.ID)

	logEntry := entities.SecurityLog{
		DeviceID:  device.ID,
		EventType: entities.EventActivation,
		Timestamp: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, e.logs.CreateSecurityLog(&logEntry))
	record := entities.EnergyConsumption{DeviceID: device.ID, Consumption: 1.0}
	require.NoError(t, e.energy.CreateEnergyConsumption(&record))

	require.NoError(t, e.devices.DeleteDevice(device.ID))

	logs, err := e.logRepo.GetByDeviceID(device.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1, "security logs must survive device deletion")

	records, err := e.energyRepo.GetByDeviceID(device.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1, "consumption records must survive device deletion")
}

func TestDeleteUserDoesNotCascade(t *testing.T) {
	e := newEnv(t)
	owner := e.addUser(t, "owner")
	device := e.addDevice(t, "cam", owner.ID)

	require.NoError(t, e.users.DeleteUser(owner.ID))

	stored, err := e.deviceRepo.GetByID(device.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stored.UserID, "device keeps its orphaned owner reference")
}
