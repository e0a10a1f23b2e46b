package domain

import (
	"encoding/json"
	"fmt"
)

// Latitude is a validated geographic latitude in the range [-90, 90] degrees.
type Latitude float64

// Longitude is a validated geographic longitude in the range [-180, 180] degrees.
type Longitude float64

// NewLatitude validates value and returns a Latitude, or an error if out of range.
func NewLatitude(value float64) (Latitude, error) {
	if value < -90.0 || value > 90.0 {
		return 0, fmt.Errorf("latitude must be in range -90..90, got %v", value)
	}
	return Latitude(value), nil
}

// NewLongitude validates value and returns a Longitude, or an error if out of range.
func NewLongitude(value float64) (Longitude, error) {
	if value < -180.0 || value > 180.0 {
		return 0, fmt.Errorf("longitude must be in range -180..180, got %v", value)
	}
	return Longitude(value), nil
}

func (l Latitude) Float64() float64 {
	return float64(l)
}

func (l Longitude) Float64() float64 {
	return float64(l)
}

func (l *Latitude) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	lat, err := NewLatitude(value)
	if err != nil {
		return err
	}
	*l = lat
	return nil
}

func (l *Longitude) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	lon, err := NewLongitude(value)
	if err != nil {
		return err
	}
	*l = lon
	return nil
}

func (l Latitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(l))
}

func (l Longitude) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(l))
}
