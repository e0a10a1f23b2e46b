package domain

import (
	"encoding/json"
	"time"
)

// RoadState classifies the road surface under a single agent sample.
type RoadState string

const (
	RoadStateSmooth RoadState = "SMOOTH"
	RoadStateRough  RoadState = "ROUGH"
)

// ProcessedAgentData is the record produced by the edge classifier and
// persisted by the store. Its JSON encoding is flat: road_state sits
// alongside the fields of the agent sample it classifies, rather than
// nesting them under an "agent" key.
type ProcessedAgentData struct {
	RoadState     RoadState     `json:"road_state"`
	Accelerometer Accelerometer `json:"accelerometer"`
	Gps           Gps           `json:"gps"`
	Timestamp     time.Time     `json:"timestamp"`
}

func NewProcessedAgentData(sample Agent, roadState RoadState) ProcessedAgentData {
	return ProcessedAgentData{
		RoadState:     roadState,
		Accelerometer: sample.Accelerometer,
		Gps:           sample.Gps,
		Timestamp:     sample.Timestamp,
	}
}

// Agent reconstructs the raw sample this record was classified from.
func (p ProcessedAgentData) Agent() Agent {
	return Agent{
		Accelerometer: p.Accelerometer,
		Gps:           p.Gps,
		Timestamp:     p.Timestamp,
	}
}

// ProcessedAgentDataWithID pairs a persisted record with its store-assigned
// identifier. ID is omitted from the JSON encoding until the record has
// actually been assigned one by the store.
type ProcessedAgentDataWithID struct {
	ID *int32 `json:"id,omitempty"`
	ProcessedAgentData
}

func (p ProcessedAgentDataWithID) MarshalJSON() ([]byte, error) {
	type alias struct {
		ID            *int32        `json:"id,omitempty"`
		RoadState     RoadState     `json:"road_state"`
		Accelerometer Accelerometer `json:"accelerometer"`
		Gps           Gps           `json:"gps"`
		Timestamp     time.Time     `json:"timestamp"`
	}
	return json.Marshal(alias{
		ID:            p.ID,
		RoadState:     p.RoadState,
		Accelerometer: p.Accelerometer,
		Gps:           p.Gps,
		Timestamp:     p.Timestamp,
	})
}
