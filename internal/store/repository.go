package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"iot-system/internal/domain"
)

// repository wraps the gorm handle with the CRUD operations the service
// needs, one table, no ORM relations.
type repository struct {
	db *gorm.DB
}

func newRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

func (r *repository) insert(ctx context.Context, data domain.ProcessedAgentData) (int32, error) {
	row := recordFromDomain(data)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *repository) insertList(ctx context.Context, data []domain.ProcessedAgentData) ([]int32, error) {
	ids := make([]int32, 0, len(data))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range data {
			row := recordFromDomain(item)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			ids = append(ids, row.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) selectByID(ctx context.Context, id int32) (*domain.ProcessedAgentData, error) {
	var row record
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	withID, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &withID.ProcessedAgentData, nil
}

func (r *repository) selectList(ctx context.Context, page Pagination) ([]domain.ProcessedAgentDataWithID, error) {
	var rows []record
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(page.Size).
		Offset(page.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProcessedAgentDataWithID, len(rows))
	for i, row := range rows {
		withID, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = withID
	}
	return out, nil
}

func (r *repository) update(ctx context.Context, id int32, data domain.ProcessedAgentData) (bool, error) {
	row := recordFromDomain(data)
	result := r.db.WithContext(ctx).Model(&record{}).Where("id = ?", id).Updates(map[string]any{
		"road_state": row.RoadState,
		"x":          row.X,
		"y":          row.Y,
		"z":          row.Z,
		"latitude":   row.Latitude,
		"longitude":  row.Longitude,
		"timestamp":  row.Timestamp,
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected != 0, nil
}

func (r *repository) delete(ctx context.Context, id int32) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&record{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected != 0, nil
}
