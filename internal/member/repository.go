package member

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("a member with this email already exists")

type Repository interface {
	Create(ctx context.Context, rec *MemberRecord) error
	List(ctx context.Context) ([]MemberRecord, error)
	DeleteByRecordID(ctx context.Context, recordID string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *MemberRecord) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *repository) List(ctx context.Context) ([]MemberRecord, error) {
	var members []MemberRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error
	return members, err
}

func (r *repository) DeleteByRecordID(ctx context.Context, recordID string) error {
	return r.db.WithContext(ctx).Where("record_id = ?", recordID).Delete(&MemberRecord{}).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MemberRecord{}).Count(&count).Error
	return count, err
}
