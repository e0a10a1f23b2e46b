package store

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"iot-system/internal/domain"
	"iot-system/internal/pb"
)

// grpcService implements pb.StoreServer on top of the same service the
// HTTP API uses.
type grpcService struct {
	pb.UnimplementedStoreServer
	service *service
}

func newGRPCService(svc *service) *grpcService {
	return &grpcService{service: svc}
}

// CreateProcessedAgentData dispatches to a single or bulk insert depending
// on how many records the request carries, mirroring the empty/single/many
// split the HTTP endpoint makes over its request body shape.
func (g *grpcService) CreateProcessedAgentData(ctx context.Context, req *pb.Input) (*pb.ProcessedAgentDataId, error) {
	data := make([]domain.ProcessedAgentData, 0, len(req.GetData()))
	for _, msg := range req.GetData() {
		item, err := domain.ProcessedAgentDataFromProto(msg)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		data = append(data, item)
	}

	switch len(data) {
	case 0:
		return &pb.ProcessedAgentDataId{Ids: nil}, nil
	case 1:
		id, err := g.service.create(ctx, data[0])
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &pb.ProcessedAgentDataId{Ids: []int32{id}}, nil
	default:
		ids, err := g.service.createList(ctx, data)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		return &pb.ProcessedAgentDataId{Ids: ids}, nil
	}
}
