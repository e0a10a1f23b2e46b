package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessedAgentData_JSONIsFlat(t *testing.T) {
	lat, err := NewLatitude(1)
	require.NoError(t, err)
	lon, err := NewLongitude(2)
	require.NoError(t, err)

	data := ProcessedAgentData{
		RoadState:     RoadStateRough,
		Accelerometer: Accelerometer{X: 1, Y: 2, Z: 3},
		Gps:           Gps{Latitude: lat, Longitude: lon},
		Timestamp:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(encoded, &asMap))

	assert.Equal(t, "ROUGH", asMap["road_state"])
	assert.Contains(t, asMap, "accelerometer")
	assert.Contains(t, asMap, "gps")
	assert.Contains(t, asMap, "timestamp")
	assert.NotContains(t, asMap, "agent") // not nested under an "agent" key
}

func TestProcessedAgentDataWithID_OmitsIDWhenNil(t *testing.T) {
	data := ProcessedAgentDataWithID{
		ProcessedAgentData: NewProcessedAgentData(Agent{}, RoadStateSmooth),
	}

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(encoded, &asMap))
	assert.NotContains(t, asMap, "id")
}

func TestProcessedAgentDataWithID_IncludesIDWhenSet(t *testing.T) {
	id := int32(42)
	data := ProcessedAgentDataWithID{
		ID:                 &id,
		ProcessedAgentData: NewProcessedAgentData(Agent{}, RoadStateSmooth),
	}

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(encoded, &asMap))
	assert.EqualValues(t, 42, asMap["id"])
}

func TestProcessedAgentData_Agent_Roundtrip(t *testing.T) {
	lat, err := NewLatitude(5)
	require.NoError(t, err)
	lon, err := NewLongitude(6)
	require.NoError(t, err)

	sample := NewAgent(Accelerometer{X: 1, Y: 2, Z: 3}, Gps{Latitude: lat, Longitude: lon}, time.Unix(100, 0))
	processed := NewProcessedAgentData(sample, RoadStateSmooth)

	assert.Equal(t, sample, processed.Agent())
}
