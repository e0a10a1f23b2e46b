package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"iot-system/internal/domain"
	"iot-system/internal/pb"
)

// batchJob is a completed batch: the buffered payloads popped from Redis
// plus the record that triggered the pop, in arrival order.
type batchJob struct {
	buffered [][]byte
	trigger  domain.ProcessedAgentData
}

// dispatcher consumes batchJobs in strict arrival order and makes a
// single in-flight gRPC call to the store per batch. A dispatch failure
// is fatal: the batch was already popped from Redis, so retrying would
// either duplicate or silently drop data, and the spec calls for the
// loss to surface rather than be masked.
type dispatcher struct {
	client pb.StoreClient
	logger *slog.Logger
	jobs   <-chan batchJob
}

func newDispatcher(client pb.StoreClient, logger *slog.Logger, jobs <-chan batchJob) *dispatcher {
	return &dispatcher{client: client, logger: logger, jobs: jobs}
}

// run processes jobs until the channel is closed or a dispatch fails.
func (d *dispatcher) run(ctx context.Context) error {
	for job := range d.jobs {
		if err := d.dispatch(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

func (d *dispatcher) dispatch(ctx context.Context, job batchJob) error {
	records := make([]domain.ProcessedAgentData, 0, len(job.buffered)+1)
	for _, raw := range job.buffered {
		var record domain.ProcessedAgentData
		if err := json.Unmarshal(raw, &record); err != nil {
			return fmt.Errorf("failed to decode buffered record from redis: %w", err)
		}
		records = append(records, record)
	}
	records = append(records, job.trigger)

	data := make([]*pb.ProcessedAgentData, len(records))
	for i, record := range records {
		data[i] = record.ToProto()
	}

	resp, err := d.client.CreateProcessedAgentData(ctx, &pb.Input{Data: data})
	if err != nil {
		return fmt.Errorf("failed to send batch to the store: %w", err)
	}

	d.logger.Info("dispatched batch to the store", "count", len(records), "ids", resp.GetIds())
	return nil
}
