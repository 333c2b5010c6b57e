package services

import (
	"fmt"
	"math"
	"sort"

	"smarthome-server/entities"
	"smarthome-server/repositories"
)

// AnalyticsService answers the read-only aggregate queries over the record
// store. Grouping and ranking happen in memory over the repository lists so
// results are identical regardless of the SQL driver behind the store. Every
// query is pure and returns a fully ordered slice; an empty slice is a valid
// result, never an error.
type AnalyticsService struct {
	UserRepo        repositories.UserRepository
	DeviceRepo      repositories.DeviceRepository
	SecurityLogRepo repositories.SecurityLogRepository
	EnergyRepo      repositories.EnergyConsumptionRepository
	HouseRepo       repositories.HouseRepository
}

func NewAnalyticsService(userRepo repositories.UserRepository, deviceRepo repositories.DeviceRepository,
	securityLogRepo repositories.SecurityLogRepository, energyRepo repositories.EnergyConsumptionRepository,
	houseRepo repositories.HouseRepository) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:        userRepo,
		DeviceRepo:      deviceRepo,
		SecurityLogRepo: securityLogRepo,
		EnergyRepo:      energyRepo,
		HouseRepo:       houseRepo,
	}
}

// DefaultTopConsumers is the limit applied by TopEnergyConsumers when the
// caller passes limit <= 0.
const DefaultTopConsumers = 3

type DeviceUsage struct {
	DeviceName string `json:"device_name"`
	Count      int    `json:"count"`
}

type HourlyPeak struct {
	Hour       int    `json:"hour"`
	DeviceName string `json:"device_name"`
	Count      int    `json:"count"`
}

type DeviceConsumption struct {
	DeviceName string  `json:"device_name"`
	Total      float64 `json:"total"`
}

type UserDeviceCount struct {
	UserName string `json:"user_name"`
	Count    int    `json:"count"`
}

type DeviceHourCount struct {
	DeviceName string `json:"device_name"`
	Hour       int    `json:"hour"`
	Count      int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type HouseTypeStat struct {
	Type           string  `json:"type"`
	AvgArea        float64 `json:"avg_area"`
	DeviceCount    int     `json:"device_count"`
	AvgConsumption float64 `json:"avg_consumption"`
}

// deviceLabels maps device IDs to display names. Logs and consumption rows
// may reference deleted devices; those group under a synthetic label instead
// of failing the query.
func (s *AnalyticsService) deviceLabels() (map[uint]string, error) {
	devices, err := s.DeviceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	labels := make(map[uint]string, len(devices))
	for _, d := range devices {
		labels[d.ID] = d.Name
	}
	return labels, nil
}

func deviceLabel(labels map[uint]string, id uint) string {
	if name, ok := labels[id]; ok {
		return name
	}
	return fmt.Sprintf("device #%d", id)
}

// DeviceUsageFrequency counts security log entries per device, most active
// first. Equal counts order by device name so the result is stable.
func (s *AnalyticsService) DeviceUsageFrequency() ([]DeviceUsage, error) {
	labels, err := s.deviceLabels()
	if err != nil {
		return nil, err
	}
	logs, err := s.SecurityLogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, l := range logs {
		counts[l.DeviceID]++
	}

	result := make([]DeviceUsage, 0, len(counts))
	for id, n := range counts {
		result = append(result, DeviceUsage{DeviceName: deviceLabel(labels, id), Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].DeviceName < result[j].DeviceName
	})
	return result, nil
}

// PeakHourDevices restricts to activation events, buckets them by hour of
// day (naive local time, no timezone conversion) and reports the single
// busiest device per hour. Equally frequent devices tie-break by
// lexicographic device name. Hours without qualifying events are omitted.
func (s *AnalyticsService) PeakHourDevices() ([]HourlyPeak, error) {
	labels, err := s.deviceLabels()
	if err != nil {
		return nil, err
	}
	logs, err := s.SecurityLogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	// hour -> device -> count
	buckets := make(map[int]map[uint]int)
	for _, l := range logs {
		if l.EventType != entities.EventActivation {
			continue
		}
		hour := l.Timestamp.Hour()
		if buckets[hour] == nil {
			buckets[hour] = make(map[uint]int)
		}
		buckets[hour][l.DeviceID]++
	}

	result := make([]HourlyPeak, 0, len(buckets))
	for hour, perDevice := range buckets {
		peak := HourlyPeak{Hour: hour, Count: -1}
		for id, n := range perDevice {
			name := deviceLabel(labels, id)
			if n > peak.Count || (n == peak.Count && name < peak.DeviceName) {
				peak.DeviceName = name
				peak.Count = n
			}
		}
		result = append(result, peak)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result, nil
}

// TopEnergyConsumers sums consumption per device and returns the top entries
// up to limit (DefaultTopConsumers when limit <= 0). Devices with no
// consumption records produce no group and are excluded.
func (s *AnalyticsService) TopEnergyConsumers(limit int) ([]DeviceConsumption, error) {
	if limit <= 0 {
		limit = DefaultTopConsumers
	}
	result, err := s.ConsumptionPerDevice()
	if err != nil {
		return nil, err
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// DevicesPerUser counts owned devices for every user. Users without devices
// appear with count 0 (outer-join semantics). Ordered by user name, then ID.
func (s *AnalyticsService) DevicesPerUser() ([]UserDeviceCount, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, err
	}
	devices, err := s.DeviceRepo.GetAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int)
	for _, d := range devices {
		counts[d.UserID]++
	}

	type row struct {
		name string
		id   uint
		n    int
	}
	rows := make([]row, 0, len(users))
	for _, u := range users {
		rows = append(rows, row{name: u.Name, id: u.ID, n: counts[u.ID]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name < rows[j].name
		}
		return rows[i].id < rows[j].id
	})

	result := make([]UserDeviceCount, 0, len(rows))
	for _, r := range rows {
		result = append(result, UserDeviceCount{UserName: r.name, Count: r.n})
	}
	return result, nil
}

// HourlyUsageByDevice counts security log entries per (device, hour of day),
// ordered by device name then hour ascending.
func (s *AnalyticsService) HourlyUsageByDevice() ([]DeviceHourCount, error) {
	labels, err := s.deviceLabels()
	if err != nil {
		return nil, err
	}
	logs, err := s.SecurityLogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	type key struct {
		id   uint
		hour int
	}
	counts := make(map[key]int)
	for _, l := range logs {
		counts[key{id: l.DeviceID, hour: l.Timestamp.Hour()}]++
	}

	result := make([]DeviceHourCount, 0, len(counts))
	for k, n := range counts {
		result = append(result, DeviceHourCount{DeviceName: deviceLabel(labels, k.id), Hour: k.hour, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DeviceName != result[j].DeviceName {
			return result[i].DeviceName < result[j].DeviceName
		}
		return result[i].Hour < result[j].Hour
	})
	return result, nil
}

// HouseTypeReport correlates house size categories with device ownership and
// energy consumption. A user contributes only when at least one of their
// devices has at least one consumption record; users with devices but no
// consumption history are excluded from every column. This mirrors the
// inner-join shape of the original report and is intended filtering, not a
// gap to widen. Averages are rounded to 2 decimals here, at the presentation
// boundary only. Ordered by category label ascending.
func (s *AnalyticsService) HouseTypeReport() ([]HouseTypeStat, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, err
	}
	devices, err := s.DeviceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	records, err := s.EnergyRepo.GetAll()
	if err != nil {
		return nil, err
	}
	houses, err := s.HouseRepo.GetAll()
	if err != nil {
		return nil, err
	}

	// Per-device consumption sums and counts.
	type devAgg struct {
		sum float64
		n   int
	}
	perDevice := make(map[uint]devAgg)
	for _, r := range records {
		agg := perDevice[r.DeviceID]
		agg.sum += r.Consumption
		agg.n++
		perDevice[r.DeviceID] = agg
	}

	// Per-user: device count and average of per-device average consumption,
	// restricted to devices that actually consumed.
	type userAgg struct {
		deviceCount int
		avgSum      float64
		consuming   int
	}
	perUser := make(map[uint]*userAgg)
	for _, d := range devices {
		agg := perUser[d.UserID]
		if agg == nil {
			agg = &userAgg{}
			perUser[d.UserID] = agg
		}
		agg.deviceCount++
		if dev, ok := perDevice[d.ID]; ok && dev.n > 0 {
			agg.avgSum += dev.sum / float64(dev.n)
			agg.consuming++
		}
	}

	userByID := make(map[uint]entities.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	type catAgg struct {
		areaSum   float64
		houses    int
		devices   int
		consSum   float64
		consUsers int
	}
	perCat := make(map[string]*catAgg)
	for _, h := range houses {
		if _, ok := userByID[h.UserID]; !ok {
			continue // orphaned house, owner deleted
		}
		ua := perUser[h.UserID]
		if ua == nil || ua.consuming == 0 {
			continue // inner-join semantics: no consumption history, no row
		}
		cat := perCat[h.Type]
		if cat == nil {
			cat = &catAgg{}
			perCat[h.Type] = cat
		}
		cat.areaSum += h.Area
		cat.houses++
		cat.devices += ua.deviceCount
		cat.consSum += ua.avgSum / float64(ua.consuming)
		cat.consUsers++
	}

	result := make([]HouseTypeStat, 0, len(perCat))
	for label, agg := range perCat {
		result = append(result, HouseTypeStat{
			Type:           label,
			AvgArea:        round2(agg.areaSum / float64(agg.houses)),
			DeviceCount:    agg.devices,
			AvgConsumption: round2(agg.consSum / float64(agg.consUsers)),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result, nil
}

// ActivityByHour counts all security log entries per hour of day, ascending.
// Hours with no events are omitted.
func (s *AnalyticsService) ActivityByHour() ([]HourCount, error) {
	logs, err := s.SecurityLogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, l := range logs {
		counts[l.Timestamp.Hour()]++
	}

	result := make([]HourCount, 0, len(counts))
	for hour, n := range counts {
		result = append(result, HourCount{Hour: hour, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result, nil
}

// ConsumptionPerDevice sums consumption per device, highest first, covering
// every device with at least one record. Equal totals order by device name.
func (s *AnalyticsService) ConsumptionPerDevice() ([]DeviceConsumption, error) {
	labels, err := s.deviceLabels()
	if err != nil {
		return nil, err
	}
	records, err := s.EnergyRepo.GetAll()
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]float64)
	for _, r := range records {
		totals[r.DeviceID] += r.Consumption
	}

	result := make([]DeviceConsumption, 0, len(totals))
	for id, total := range totals {
		result = append(result, DeviceConsumption{DeviceName: deviceLabel(labels, id), Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].DeviceName < result[j].DeviceName
	})
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
