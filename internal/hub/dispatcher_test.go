package hub

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"iot-system/internal/domain"
	"iot-system/internal/pb"
)

type fakeStoreClient struct {
	calls [][]*pb.ProcessedAgentData
	err   error
}

func (f *fakeStoreClient) CreateProcessedAgentData(_ context.Context, in *pb.Input, _ ...grpc.CallOption) (*pb.ProcessedAgentDataId, error) {
	f.calls = append(f.calls, in.GetData())
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int32, len(in.GetData()))
	for i := range ids {
		ids[i] = int32(i + 1)
	}
	return &pb.ProcessedAgentDataId{Ids: ids}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func recordPayload(t *testing.T, x float64) []byte {
	t.Helper()
	data, err := json.Marshal(domain.ProcessedAgentData{
		RoadState: domain.RoadStateSmooth,
		Accelerometer: domain.Accelerometer{X: x},
	})
	require.NoError(t, err)
	return data
}

func TestDispatcher_Dispatch_OrdersBufferedBeforeTrigger(t *testing.T) {
	client := &fakeStoreClient{}
	d := newDispatcher(client, testLogger(), nil)

	trigger := domain.ProcessedAgentData{RoadState: domain.RoadStateRough, Accelerometer: domain.Accelerometer{X: 3}}
	job := batchJob{
		buffered: [][]byte{recordPayload(t, 1), recordPayload(t, 2)},
		trigger:  trigger,
	}

	err := d.dispatch(context.Background(), job)
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	sent := client.calls[0]
	require.Len(t, sent, 3)
	assert.Equal(t, 1.0, sent[0].GetAccelerometer().GetX())
	assert.Equal(t, 2.0, sent[1].GetAccelerometer().GetX())
	assert.Equal(t, 3.0, sent[2].GetAccelerometer().GetX())
}

func TestDispatcher_Dispatch_PropagatesGRPCError(t *testing.T) {
	client := &fakeStoreClient{err: errors.New("store unavailable")}
	d := newDispatcher(client, testLogger(), nil)

	job := batchJob{trigger: domain.ProcessedAgentData{}}
	err := d.dispatch(context.Background(), job)
	assert.Error(t, err)
}

func TestDispatcher_Dispatch_RejectsUndecodableBufferedPayload(t *testing.T) {
	client := &fakeStoreClient{}
	d := newDispatcher(client, testLogger(), nil)

	job := batchJob{
		buffered: [][]byte{[]byte("not json")},
		trigger:  domain.ProcessedAgentData{},
	}

	err := d.dispatch(context.Background(), job)
	assert.Error(t, err)
	assert.Empty(t, client.calls)
}

func TestDispatcher_Run_ProcessesJobsInOrderUntilChannelCloses(t *testing.T) {
	client := &fakeStoreClient{}
	jobs := make(chan batchJob, 2)
	d := newDispatcher(client, testLogger(), jobs)

	jobs <- batchJob{trigger: domain.ProcessedAgentData{Accelerometer: domain.Accelerometer{X: 1}}}
	jobs <- batchJob{trigger: domain.ProcessedAgentData{Accelerometer: domain.Accelerometer{X: 2}}}
	close(jobs)

	err := d.run(context.Background())
	require.NoError(t, err)
	require.Len(t, client.calls, 2)
	assert.Equal(t, 1.0, client.calls[0][0].GetAccelerometer().GetX())
	assert.Equal(t, 2.0, client.calls[1][0].GetAccelerometer().GetX())
}

func TestDispatcher_Run_StopsOnFirstError(t *testing.T) {
	client := &fakeStoreClient{err: errors.New("boom")}
	jobs := make(chan batchJob, 2)
	d := newDispatcher(client, testLogger(), jobs)

	jobs <- batchJob{trigger: domain.ProcessedAgentData{}}
	jobs <- batchJob{trigger: domain.ProcessedAgentData{}}
	close(jobs)

	err := d.run(context.Background())
	assert.Error(t, err)
	assert.Len(t, client.calls, 1)
}
