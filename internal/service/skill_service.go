package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"gorm.io/datatypes"
)

type SkillService interface {
	// GetSkills 返回全部技能，priority 倒序，name 升序
	GetSkills(ctx context.Context) ([]*dto.SkillDTO, error)
	// GetSkill 按 slug 返回单个技能
	GetSkill(ctx context.Context, slug string) (*dto.SkillDTO, error)
	// UpdateConfig 整体替换技能配置
	UpdateConfig(ctx context.Context, slug string, config map[string]interface{}) error
}

type skillServiceImpl struct {
	skillRepo repository.SkillRepo
}

func NewSkillService(skillRepo repository.SkillRepo) SkillService {
	return &skillServiceImpl{skillRepo: skillRepo}
}

func (s *skillServiceImpl) GetSkills(ctx context.Context) ([]*dto.SkillDTO, error) {
	skills, err := s.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SkillDTO, 0, len(skills))
	for _, skill := range skills {
		item := &dto.SkillDTO{}
		if err = copier.Copy(item, skill); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *skillServiceImpl) GetSkill(ctx context.Context, slug string) (*dto.SkillDTO, error) {
	skill, err := s.skillRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	item := &dto.SkillDTO{}
	if err = copier.Copy(item, skill); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *skillServiceImpl) UpdateConfig(ctx context.Context, slug string, config map[string]interface{}) error {
	if config == nil {
		return ErrParamInvalid
	}
	if err := s.skillRepo.UpdateConfig(ctx, slug, datatypes.JSONMap(config)); err != nil {
		return translateStoreError(err)
	}
	return nil
}
