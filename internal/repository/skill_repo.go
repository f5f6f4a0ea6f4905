package repository

import (
	"PulseOS/internal/model"
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SkillRepo interface {
	// GetAll 查询全部技能，按 priority 倒序，name 升序稳定排序
	GetAll(ctx context.Context) ([]*model.Skill, error)
	// GetBySlug 按 slug 查询单个技能，无结果时返回 (nil, nil)
	GetBySlug(ctx context.Context, slug string) (*model.Skill, error)
	// UpdateConfig 整体替换 config_json
	UpdateConfig(ctx context.Context, slug string, config datatypes.JSONMap) error
}

type skillRepoImpl struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepo {
	return &skillRepoImpl{db: db}
}

func (s *skillRepoImpl) GetAll(ctx context.Context) ([]*model.Skill, error) {
	var skills []*model.Skill
	err := s.db.WithContext(ctx).
		Order("priority DESC, name ASC").
		Find(&skills).Error
	if IsMissingTable(err) {
		return []*model.Skill{}, nil
	}
	return skills, err
}

func (s *skillRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Skill, error) {
	var skill model.Skill
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || IsMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *skillRepoImpl) UpdateConfig(ctx context.Context, slug string, config datatypes.JSONMap) error {
	return s.db.WithContext(ctx).Model(&model.Skill{}).
		Where("slug = ?", slug).
		Update("config_json", config).Error
}
