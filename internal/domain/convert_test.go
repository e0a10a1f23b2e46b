package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iot-system/internal/pb"
)

func validProcessedAgentData(t *testing.T, roadState RoadState) ProcessedAgentData {
	t.Helper()
	lat, err := NewLatitude(50.45)
	require.NoError(t, err)
	lon, err := NewLongitude(30.52)
	require.NoError(t, err)

	return ProcessedAgentData{
		RoadState:     roadState,
		Accelerometer: Accelerometer{X: 1, Y: 2, Z: 3},
		Gps:           Gps{Latitude: lat, Longitude: lon},
		Timestamp:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestToProto_FromProto_RoundTrip(t *testing.T) {
	for _, rs := range []RoadState{RoadStateSmooth, RoadStateRough} {
		original := validProcessedAgentData(t, rs)

		msg := original.ToProto()
		restored, err := ProcessedAgentDataFromProto(msg)
		require.NoError(t, err)

		assert.Equal(t, original, restored)
	}
}

func TestToProto_MapsRoadStateBijectively(t *testing.T) {
	smooth := validProcessedAgentData(t, RoadStateSmooth).ToProto()
	rough := validProcessedAgentData(t, RoadStateRough).ToProto()

	assert.Equal(t, pb.RoadState_SMOOTH, smooth.GetRoadState())
	assert.Equal(t, pb.RoadState_ROUGH, rough.GetRoadState())
}

func TestProcessedAgentDataFromProto_RejectsOutOfRangeCoordinates(t *testing.T) {
	msg := validProcessedAgentData(t, RoadStateSmooth).ToProto()
	msg.Gps.Latitude = 91.0

	_, err := ProcessedAgentDataFromProto(msg)
	assert.Error(t, err)
}

func TestProcessedAgentDataFromProto_RejectsMissingFields(t *testing.T) {
	msg := validProcessedAgentData(t, RoadStateSmooth).ToProto()
	msg.Gps = nil

	_, err := ProcessedAgentDataFromProto(msg)
	assert.Error(t, err)
}

func TestProcessedAgentDataFromProto_RejectsNilMessage(t *testing.T) {
	_, err := ProcessedAgentDataFromProto(nil)
	assert.Error(t, err)
}
