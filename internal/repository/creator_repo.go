package repository

import (
	"PulseOS/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// DefaultPersonaPostLimit 人设帖子默认返回条数
const DefaultPersonaPostLimit = 20

type CreatorRepo interface {
	// GetAll 查询全部人设，按更新时间倒序
	GetAll(ctx context.Context) ([]*model.CreatorPersona, error)
	// GetByHandle 按 handle 查询单个人设，无结果时返回 (nil, nil)
	GetByHandle(ctx context.Context, handle string) (*model.CreatorPersona, error)
	// GetLatestRun 按 handle 关联查询最近一次抓取记录，无结果时返回 (nil, nil)
	GetLatestRun(ctx context.Context, handle string) (*model.CreatorPersonaRun, error)
	// GetPosts 查询人设帖子，按互动分倒序、创建时间倒序，limit<=0 时取默认值
	GetPosts(ctx context.Context, personaID uint64, limit int) ([]*model.CreatorPersonaPost, error)
	// UpdateStatus 按 handle 替换人设状态
	UpdateStatus(ctx context.Context, handle string, status string) error
	// Delete 级联删除人设：帖子、抓取记录、人设本体，置于单个事务内。
	// 人设不存在时返回 gorm.ErrRecordNotFound，不执行任何删除。
	Delete(ctx context.Context, handle string) error
}

type creatorRepoImpl struct {
	db *gorm.DB
}

func NewCreatorRepo(db *gorm.DB) CreatorRepo {
	return &creatorRepoImpl{db: db}
}

func (s *creatorRepoImpl) GetAll(ctx context.Context) ([]*model.CreatorPersona, error) {
	var personas []*model.CreatorPersona
	err := s.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&personas).Error
	if IsMissingTable(err) {
		return []*model.CreatorPersona{}, nil
	}
	return personas, err
}

func (s *creatorRepoImpl) GetByHandle(ctx context.Context, handle string) (*model.CreatorPersona, error) {
	var persona model.CreatorPersona
	err := s.db.WithContext(ctx).Where("handle = ?", handle).First(&persona).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || IsMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &persona, nil
}

// GetLatestRun 调用方只持有 handle，这里按自然键联表而非数字主键
func (s *creatorRepoImpl) GetLatestRun(ctx context.Context, handle string) (*model.CreatorPersonaRun, error) {
	var runs []*model.CreatorPersonaRun
	err := s.db.WithContext(ctx).Table("creator_persona_runs AS r").
		Select("r.*").
		Joins("JOIN creator_personas AS p ON p.id = r.persona_id").
		Where("p.handle = ?", handle).
		Order("r.run_at DESC").
		Limit(1).
		Find(&runs).Error
	if IsMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs[0], nil
}

func (s *creatorRepoImpl) GetPosts(ctx context.Context, personaID uint64, limit int) ([]*model.CreatorPersonaPost, error) {
	if limit <= 0 {
		limit = DefaultPersonaPostLimit
	}

	var posts []*model.CreatorPersonaPost
	err := s.db.WithContext(ctx).
		Where("persona_id = ?", personaID).
		Order("engagement_score DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if IsMissingTable(err) {
		return []*model.CreatorPersonaPost{}, nil
	}
	return posts, err
}

func (s *creatorRepoImpl) UpdateStatus(ctx context.Context, handle string, status string) error {
	return s.db.WithContext(ctx).Model(&model.CreatorPersona{}).
		Where("handle = ?", handle).
		Update("status", status).Error
}

// Delete 先删子表后删主体，防止中途失败留下孤儿行
func (s *creatorRepoImpl) Delete(ctx context.Context, handle string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var persona model.CreatorPersona
		if err := tx.Select("id").Where("handle = ?", handle).First(&persona).Error; err != nil {
			return err
		}

		if err := tx.Where("persona_id = ?", persona.ID).Delete(&model.CreatorPersonaPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("persona_id = ?", persona.ID).Delete(&model.CreatorPersonaRun{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CreatorPersona{}, persona.ID).Error
	})
}
