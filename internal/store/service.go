package store

import (
	"context"
	"log/slog"

	"iot-system/internal/domain"
)

// service implements the create/read/update/delete operations shared by
// the HTTP and gRPC surfaces, broadcasting every mutation to websocket
// subscribers.
type service struct {
	repo   *repository
	subs   *subscribers
	logger *slog.Logger
}

func newService(repo *repository, subs *subscribers, logger *slog.Logger) *service {
	return &service{repo: repo, subs: subs, logger: logger}
}

func (s *service) create(ctx context.Context, data domain.ProcessedAgentData) (int32, error) {
	id, err := s.repo.insert(ctx, data)
	if err != nil {
		return 0, err
	}

	payload, err := newRecordMessage(id, data)
	if err != nil {
		return 0, err
	}
	s.subs.broadcast(payload)

	return id, nil
}

func (s *service) createList(ctx context.Context, data []domain.ProcessedAgentData) ([]int32, error) {
	ids, err := s.repo.insertList(ctx, data)
	if err != nil {
		return nil, err
	}

	payload, err := createdListMessage(ids, data)
	if err != nil {
		return nil, err
	}
	s.subs.broadcast(payload)

	return ids, nil
}

func (s *service) fetch(ctx context.Context, id int32) (*domain.ProcessedAgentData, error) {
	return s.repo.selectByID(ctx, id)
}

func (s *service) fetchList(ctx context.Context, page Pagination) ([]domain.ProcessedAgentDataWithID, error) {
	return s.repo.selectList(ctx, page)
}

func (s *service) update(ctx context.Context, id int32, data domain.ProcessedAgentData) (bool, error) {
	updated, err := s.repo.update(ctx, id, data)
	if err != nil {
		return false, err
	}

	if updated {
		payload, err := updatedRecordMessage(id, data)
		if err != nil {
			return false, err
		}
		s.subs.broadcast(payload)
	}

	return updated, nil
}

func (s *service) delete(ctx context.Context, id int32) error {
	deleted, err := s.repo.delete(ctx, id)
	if err != nil {
		return err
	}

	if deleted {
		payload, err := deletedRecordMessage(id)
		if err != nil {
			return err
		}
		s.subs.broadcast(payload)
	}

	return nil
}
