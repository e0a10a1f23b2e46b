package store

import (
	"time"

	"iot-system/internal/domain"
)

// record is the gorm-mapped row for a persisted processed agent sample.
// It is flat on purpose: one column per field, mirroring the table the
// original schema defines, rather than a nested JSON blob.
type record struct {
	ID        int32     `gorm:"primaryKey;autoIncrement"`
	RoadState string    `gorm:"column:road_state;not null"`
	X         float64   `gorm:"column:x;not null"`
	Y         float64   `gorm:"column:y;not null"`
	Z         float64   `gorm:"column:z;not null"`
	Latitude  float64   `gorm:"column:latitude;not null"`
	Longitude float64   `gorm:"column:longitude;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

func (record) TableName() string {
	return "processed_agent_data"
}

func recordFromDomain(data domain.ProcessedAgentData) record {
	return record{
		RoadState: string(data.RoadState),
		X:         data.Accelerometer.X,
		Y:         data.Accelerometer.Y,
		Z:         data.Accelerometer.Z,
		Latitude:  data.Gps.Latitude.Float64(),
		Longitude: data.Gps.Longitude.Float64(),
		Timestamp: data.Timestamp,
	}
}

func (r record) toDomain() (domain.ProcessedAgentDataWithID, error) {
	lat, err := domain.NewLatitude(r.Latitude)
	if err != nil {
		return domain.ProcessedAgentDataWithID{}, err
	}
	lon, err := domain.NewLongitude(r.Longitude)
	if err != nil {
		return domain.ProcessedAgentDataWithID{}, err
	}

	id := r.ID
	return domain.ProcessedAgentDataWithID{
		ID: &id,
		ProcessedAgentData: domain.ProcessedAgentData{
			RoadState:     domain.RoadState(r.RoadState),
			Accelerometer: domain.Accelerometer{X: r.X, Y: r.Y, Z: r.Z},
			Gps:           domain.Gps{Latitude: lat, Longitude: lon},
			Timestamp:     r.Timestamp,
		},
	}, nil
}

// Pagination mirrors the original API's page/size query parameters:
// page is 1-indexed, size must lie in [1, 20]; values outside those
// bounds are rejected, not clamped.
type Pagination struct {
	Page int
	Size int
}

const (
	defaultPage = 1
	defaultSize = 5
	maxSize     = 20
)

// NewPagination validates page and size, applying the same defaults and
// bounds as the original API's PageNumber/PageSize types.
func NewPagination(page, size int) (Pagination, error) {
	if page == 0 {
		page = defaultPage
	}
	if size == 0 {
		size = defaultSize
	}
	if page < 1 {
		return Pagination{}, errInvalidPage
	}
	if size < 1 || size > maxSize {
		return Pagination{}, errInvalidSize
	}
	return Pagination{Page: page, Size: size}, nil
}

func (p Pagination) offset() int {
	return (p.Page - 1) * p.Size
}
