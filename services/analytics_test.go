package services

import (
	"testing"

	"smarthome-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStoreYieldsEmptyResults(t *testing.T) {
	f := newFixture(t)

	usage, err := f.analytics.DeviceUsageFrequency()
	require.NoError(t, err)
	assert.Empty(t, usage)

	peaks, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	assert.Empty(t, peaks)

	top, err := f.analytics.TopEnergyConsumers(0)
	require.NoError(t, err)
	assert.Empty(t, top)

	perUser, err := f.analytics.DevicesPerUser()
	require.NoError(t, err)
	assert.Empty(t, perUser)

	report, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestDeviceUsageFrequencyOrdersByCountThenName(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "alpha", owner.ID)
	b := f.addDevice(t, "beta", owner.ID)
	c := f.addDevice(t, "gamma", owner.ID)

	for i := 0; i < 3; i++ {
		f.addActivation(t, b.ID, 10)
	}
	f.addActivation(t, a.ID, 11)
	f.addActivation(t, c.ID, 11)

	usage, err := f.analytics.DeviceUsageFrequency()
	require.NoError(t, err)
	require.Len(t, usage, 3)
	assert.Equal(t, DeviceUsage{DeviceName: "beta", Count: 3}, usage[0])
	// alpha and gamma tie on 1, name breaks the tie
	assert.Equal(t, DeviceUsage{DeviceName: "alpha", Count: 1}, usage[1])
	assert.Equal(t, DeviceUsage{DeviceName: "gamma", Count: 1}, usage[2])
}

func TestPeakHourDevices(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "deviceA", owner.ID)
	b := f.addDevice(t, "deviceB", owner.ID)

	for i := 0; i < 3; i++ {
		f.addActivation(t, a.ID, 5)
	}
	for i := 0; i < 5; i++ {
		f.addActivation(t, b.ID, 5)
	}
	f.addActivation(t, a.ID, 6)

	peaks, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	require.Len(t, peaks, 2)
	assert.Equal(t, HourlyPeak{Hour: 5, DeviceName: "deviceB", Count: 5}, peaks[0])
	assert.Equal(t, HourlyPeak{Hour: 6, DeviceName: "deviceA", Count: 1}, peaks[1])
}

func TestPeakHourDevicesIgnoresOtherEventTypes(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	device := f.addDevice(t, "cam", owner.ID)

	logEntry := entities.SecurityLog{DeviceID: device.ID, EventType: "tamper"}
	require.NoError(t, f.logUC.CreateSecurityLog(&logEntry))

	peaks, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	assert.Empty(t, peaks)
}

func TestPeakHourTieBreaksLexicographically(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "aardvark", owner.ID)
	z := f.addDevice(t, "zebra", owner.ID)

	f.addActivation(t, z.ID, 9)
	f.addActivation(t, a.ID, 9)

	peaks, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	require.Len(t, peaks, 1)
	assert.Equal(t, HourlyPeak{Hour: 9, DeviceName: "aardvark", Count: 1}, peaks[0])
}

func TestTopEnergyConsumers(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "A", owner.ID)
	b := f.addDevice(t, "B", owner.ID)
	c := f.addDevice(t, "C", owner.ID)
	f.addDevice(t, "idle", owner.ID) // never consumes, must not appear

	f.addConsumption(t, a.ID, 12.0)
	f.addConsumption(t, b.ID, 30.0)
	f.addConsumption(t, c.ID, 5.0)

	top, err := f.analytics.TopEnergyConsumers(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, DeviceConsumption{DeviceName: "B", Total: 30.0}, top[0])
	assert.Equal(t, DeviceConsumption{DeviceName: "A", Total: 12.0}, top[1])

	// limit <= 0 falls back to the default of 3
	top, err = f.analytics.TopEnergyConsumers(0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "C", top[2].DeviceName)
}

func TestDevicesPerUserIncludesZeroCounts(t *testing.T) {
	f := newFixture(t)
	alice := f.addUser(t, "alice")
	f.addUser(t, "bob")
	f.addDevice(t, "lamp", alice.ID)
	f.addDevice(t, "lock", alice.ID)

	perUser, err := f.analytics.DevicesPerUser()
	require.NoError(t, err)
	require.Len(t, perUser, 2)
	assert.Equal(t, UserDeviceCount{UserName: "alice", Count: 2}, perUser[0])
	assert.Equal(t, UserDeviceCount{UserName: "bob", Count: 0}, perUser[1])
}

func TestHourlyUsageByDeviceOrdering(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "alpha", owner.ID)
	b := f.addDevice(t, "beta", owner.ID)

	f.addActivation(t, b.ID, 7)
	f.addActivation(t, a.ID, 20)
	f.addActivation(t, a.ID, 7)
	f.addActivation(t, a.ID, 7)

	rows, err := f.analytics.HourlyUsageByDevice()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, DeviceHourCount{DeviceName: "alpha", Hour: 7, Count: 2}, rows[0])
	assert.Equal(t, DeviceHourCount{DeviceName: "alpha", Hour: 20, Count: 1}, rows[1])
	assert.Equal(t, DeviceHourCount{DeviceName: "beta", Hour: 7, Count: 1}, rows[2])
}

func TestActivityByHourHistogram(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	device := f.addDevice(t, "sensor", owner.ID)

	for _, hour := range []int{3, 3, 3, 14} {
		f.addActivation(t, device.ID, hour)
	}

	hist, err := f.analytics.ActivityByHour()
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, HourCount{Hour: 3, Count: 3}, hist[0])
	assert.Equal(t, HourCount{Hour: 14, Count: 1}, hist[1])
}

func TestHouseTypeReport(t *testing.T) {
	f := newFixture(t)

	// alice: small house, two devices, one of them consuming
	alice := f.addUser(t, "alice")
	lamp := f.addDevice(t, "lamp", alice.ID)
	f.addDevice(t, "lock", alice.ID)
	f.addConsumption(t, lamp.ID, 2.0)
	f.addConsumption(t, lamp.ID, 4.0)
	f.addHouse(t, alice.ID, 50)

	// bob: medium house, one device, no consumption history -> excluded
	bob := f.addUser(t, "bob")
	f.addDevice(t, "heater", bob.ID)
	f.addHouse(t, bob.ID, 80)

	report, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	require.Len(t, report, 1, "users without consumption must not appear")

	small := report[0]
	assert.Equal(t, entities.HouseSmall, small.Type)
	assert.Equal(t, 50.0, small.AvgArea)
	assert.Equal(t, 2, small.DeviceCount)
	// lamp averages (2+4)/2 = 3.0, alice's only consuming device
	assert.Equal(t, 3.0, small.AvgConsumption)
}

func TestHouseTypeReportRoundsToTwoDecimals(t *testing.T) {
	f := newFixture(t)
	alice := f.addUser(t, "alice")
	lamp := f.addDevice(t, "lamp", alice.ID)
	f.addConsumption(t, lamp.ID, 1.0)
	f.addConsumption(t, lamp.ID, 1.0)
	f.addConsumption(t, lamp.ID, 0.005)
	f.addHouse(t, alice.ID, 100.005)

	report, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.InDelta(t, 100.01, report[0].AvgArea, 1e-9)
	assert.InDelta(t, 0.67, report[0].AvgConsumption, 1e-9)
}

func TestQueriesAreIdempotent(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "alpha", owner.ID)
	b := f.addDevice(t, "beta", owner.ID)
	f.addActivation(t, a.ID, 4)
	f.addActivation(t, b.ID, 4)
	f.addConsumption(t, a.ID, 1.5)
	f.addHouse(t, owner.ID, 130)

	first, err := f.analytics.DeviceUsageFrequency()
	require.NoError(t, err)
	second, err := f.analytics.DeviceUsageFrequency()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	peaks1, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	peaks2, err := f.analytics.PeakHourDevices()
	require.NoError(t, err)
	assert.Equal(t, peaks1, peaks2)

	report1, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	report2, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	assert.Equal(t, report1, report2)
}

func TestOrphanedReferencesAreTolerated(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	device := f.addDevice(t, "doomed", owner.ID)
	f.addActivation(t, device.ID, 8)
	f.addConsumption(t, device.ID, 2.5)

	require.NoError(t, f.deviceUC.DeleteDevice(device.ID))

	// the child rows survive the delete
	logs, err := f.logs.GetByDeviceID(device.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	// and the aggregates group them under a synthetic label
	usage, err := f.analytics.DeviceUsageFrequency()
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Contains(t, usage[0].DeviceName, "device #")

	totals, err := f.analytics.ConsumptionPerDevice()
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 2.5, totals[0].Total)
}

func TestConsumptionPerDeviceIncludesAllConsumers(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	a := f.addDevice(t, "alpha", owner.ID)
	b := f.addDevice(t, "beta", owner.ID)
	f.addConsumption(t, a.ID, 1.0)
	f.addConsumption(t, a.ID, 2.0)
	f.addConsumption(t, b.ID, 10.0)

	totals, err := f.analytics.ConsumptionPerDevice()
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, DeviceConsumption{DeviceName: "beta", Total: 10.0}, totals[0])
	assert.Equal(t, DeviceConsumption{DeviceName: "alpha", Total: 3.0}, totals[1])
}

func TestHouseTypeReportSkipsOrphanedHouses(t *testing.T) {
	f := newFixture(t)
	owner := f.addUser(t, "owner")
	lamp := f.addDevice(t, "lamp", owner.ID)
	f.addConsumption(t, lamp.ID, 1.0)
	f.addHouse(t, owner.ID, 70)

	require.NoError(t, f.db.GetDB().Delete(&entities.User{}, owner.ID).Error)

	report, err := f.analytics.HouseTypeReport()
	require.NoError(t, err)
	assert.Empty(t, report)
}
