package domain

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"iot-system/internal/pb"
)

// ToProto converts a validated ProcessedAgentData into its wire message.
func (p ProcessedAgentData) ToProto() *pb.ProcessedAgentData {
	var roadState pb.RoadState
	if p.RoadState == RoadStateRough {
		roadState = pb.RoadState_ROUGH
	} else {
		roadState = pb.RoadState_SMOOTH
	}

	return &pb.ProcessedAgentData{
		RoadState: roadState,
		Accelerometer: &pb.Accelerometer{
			X: p.Accelerometer.X,
			Y: p.Accelerometer.Y,
			Z: p.Accelerometer.Z,
		},
		Gps: &pb.Gps{
			Latitude:  p.Gps.Latitude.Float64(),
			Longitude: p.Gps.Longitude.Float64(),
		},
		Timestamp: timestamppb.New(p.Timestamp),
	}
}

// ProcessedAgentDataFromProto validates and converts a wire message back
// into the domain type, rejecting out-of-range coordinates.
func ProcessedAgentDataFromProto(msg *pb.ProcessedAgentData) (ProcessedAgentData, error) {
	if msg == nil {
		return ProcessedAgentData{}, fmt.Errorf("processed agent data message is nil")
	}

	var roadState RoadState
	switch msg.GetRoadState() {
	case pb.RoadState_ROUGH:
		roadState = RoadStateRough
	default:
		roadState = RoadStateSmooth
	}

	accel := msg.GetAccelerometer()
	gps := msg.GetGps()
	if accel == nil || gps == nil {
		return ProcessedAgentData{}, fmt.Errorf("processed agent data message is missing accelerometer or gps fields")
	}

	lat, err := NewLatitude(gps.GetLatitude())
	if err != nil {
		return ProcessedAgentData{}, err
	}
	lon, err := NewLongitude(gps.GetLongitude())
	if err != nil {
		return ProcessedAgentData{}, err
	}

	return ProcessedAgentData{
		RoadState: roadState,
		Accelerometer: Accelerometer{
			X: accel.GetX(),
			Y: accel.GetY(),
			Z: accel.GetZ(),
		},
		Gps: Gps{
			Latitude:  lat,
			Longitude: lon,
		},
		Timestamp: msg.GetTimestamp().AsTime(),
	}, nil
}
