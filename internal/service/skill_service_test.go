package service

import (
	"PulseOS/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeSkillRepo struct {
	skills  []*model.Skill
	configs map[string]datatypes.JSONMap
	err     error
}

func newFakeSkillRepo(skills ...*model.Skill) *fakeSkillRepo {
	return &fakeSkillRepo{
		skills:  skills,
		configs: map[string]datatypes.JSONMap{},
	}
}

func (s *fakeSkillRepo) GetAll(ctx context.Context) ([]*model.Skill, error) {
	return s.skills, s.err
}

func (s *fakeSkillRepo) GetBySlug(ctx context.Context, slug string) (*model.Skill, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, skill := range s.skills {
		if skill.Slug == slug {
			return skill, nil
		}
	}
	return nil, nil
}

func (s *fakeSkillRepo) UpdateConfig(ctx context.Context, slug string, config datatypes.JSONMap) error {
	if s.err != nil {
		return s.err
	}
	s.configs[slug] = config
	return nil
}

func TestSkillService_GetSkill(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo(&model.Skill{
		Slug: "daily-signal", Name: "Daily Signal", Type: "post", Priority: 0.9,
		ConfigJSON: datatypes.JSONMap{"tone": "direct"},
	}))

	skill, err := svc.GetSkill(context.Background(), "daily-signal")
	require.NoError(t, err)
	assert.Equal(t, "Daily Signal", skill.Name)
	assert.Equal(t, 0.9, skill.Priority)
	assert.Equal(t, "direct", skill.ConfigJSON["tone"])
}

func TestSkillService_GetSkill_NotFound(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	_, err := svc.GetSkill(context.Background(), "nope")
	require.ErrorIs(t, err, ErrSkillNotFound)
}

func TestSkillService_UpdateConfig(t *testing.T) {
	repo := newFakeSkillRepo()
	svc := NewSkillService(repo)

	err := svc.UpdateConfig(context.Background(), "daily-signal", map[string]interface{}{"tone": "casual"})
	require.NoError(t, err)
	assert.Equal(t, "casual", repo.configs["daily-signal"]["tone"])
}

func TestSkillService_UpdateConfig_NilConfig(t *testing.T) {
	svc := NewSkillService(newFakeSkillRepo())

	err := svc.UpdateConfig(context.Background(), "daily-signal", nil)
	require.ErrorIs(t, err, ErrParamInvalid)
}
