// Package domain holds the data types shared across the agent, edge, hub
// and store services: raw sensor readings, the classified record the
// pipeline produces, and their JSON/protobuf encodings.
package domain

import "time"

// Accelerometer is a single tri-axial accelerometer reading, in mm/s^2.
type Accelerometer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Gps is a single, validated geographic position.
type Gps struct {
	Latitude  Latitude  `json:"latitude"`
	Longitude Longitude `json:"longitude"`
}

// Agent is a single raw sensor sample produced by the agent: one
// accelerometer reading, one GPS fix, and the time it was captured.
type Agent struct {
	Accelerometer Accelerometer `json:"accelerometer"`
	Gps           Gps           `json:"gps"`
	Timestamp     time.Time     `json:"timestamp"`
}

func NewAgent(accelerometer Accelerometer, gps Gps, timestamp time.Time) Agent {
	return Agent{
		Accelerometer: accelerometer,
		Gps:           gps,
		Timestamp:     timestamp,
	}
}
