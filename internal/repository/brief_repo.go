package repository

import (
	"PulseOS/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BriefRepo interface {
	// GetByDate 查询指定日期(YYYY-MM-DD)的简报，无结果时返回 (nil, nil)
	GetByDate(ctx context.Context, date string) (*model.DailyBrief, error)
}

type briefRepoImpl struct {
	db *gorm.DB
}

func NewBriefRepo(db *gorm.DB) BriefRepo {
	return &briefRepoImpl{db: db}
}

func (s *briefRepoImpl) GetByDate(ctx context.Context, date string) (*model.DailyBrief, error) {
	var brief model.DailyBrief
	err := s.db.WithContext(ctx).Where("date = ?", date).First(&brief).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || IsMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &brief, nil
}
