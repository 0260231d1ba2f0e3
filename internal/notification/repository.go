package notification

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, n *InAppNotification) error
	List(ctx context.Context, unreadOnly bool, limit int) ([]InAppNotification, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) error

	SaveToken(ctx context.Context, t *FCMDeviceToken) error
	AllTokens(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *InAppNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) List(ctx context.Context, unreadOnly bool, limit int) ([]InAppNotification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := r.db.WithContext(ctx).Model(&InAppNotification{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var items []InAppNotification
	err := query.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *repository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&InAppNotification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

// SaveToken upserts on the token value so re-registration is idempotent.
func (r *repository) SaveToken(ctx context.Context, t *FCMDeviceToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id"}),
		}).
		Create(t).Error
}

func (r *repository) AllTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&FCMDeviceToken{}).
		Pluck("token", &tokens).Error
	return tokens, err
}
