package repository

import (
	"PulseOS/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSkillRepo_GetAll_Order(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	require.NoError(t, db.Create(&model.Skill{
		Slug: "reply-guy", Name: "Reply Guy", Type: "reply", Priority: 0.5,
		ConfigJSON: datatypes.JSONMap{},
	}).Error)
	require.NoError(t, db.Create(&model.Skill{
		Slug: "daily-signal", Name: "Daily Signal", Type: "post", Priority: 0.9,
		ConfigJSON: datatypes.JSONMap{},
	}).Error)
	require.NoError(t, db.Create(&model.Skill{
		Slug: "curator", Name: "Curator", Type: "post", Priority: 0.5,
		ConfigJSON: datatypes.JSONMap{},
	}).Error)

	skills, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 3)
	// priority 倒序，同分按 name 升序
	assert.Equal(t, "daily-signal", skills[0].Slug)
	assert.Equal(t, "curator", skills[1].Slug)
	assert.Equal(t, "reply-guy", skills[2].Slug)
}

func TestSkillRepo_GetAll_MissingTable(t *testing.T) {
	repo := NewSkillRepo(newEmptyDB(t))

	skills, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestSkillRepo_GetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Skill{
		Slug: "daily-signal", Name: "Daily Signal", Type: "post",
		ConfigJSON: datatypes.JSONMap{"tone": "direct"},
	}).Error)

	skill, err := repo.GetBySlug(ctx, "daily-signal")
	require.NoError(t, err)
	require.NotNil(t, skill)
	assert.Equal(t, "Daily Signal", skill.Name)
	assert.Equal(t, "direct", skill.ConfigJSON["tone"])

	missing, err := repo.GetBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSkillRepo_GetBySlug_MissingTable(t *testing.T) {
	repo := NewSkillRepo(newEmptyDB(t))

	skill, err := repo.GetBySlug(context.Background(), "daily-signal")
	require.NoError(t, err)
	assert.Nil(t, skill)
}

func TestSkillRepo_UpdateConfig(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	require.NoError(t, db.Create(&model.Skill{
		Slug: "daily-signal", Name: "Daily Signal", Type: "post",
		ConfigJSON: datatypes.JSONMap{"tone": "direct", "length": "short"},
	}).Error)

	// 整体替换，未出现的键被丢弃
	require.NoError(t, repo.UpdateConfig(context.Background(), "daily-signal",
		datatypes.JSONMap{"tone": "casual"}))

	var got model.Skill
	require.NoError(t, db.Where("slug = ?", "daily-signal").First(&got).Error)
	assert.Equal(t, "casual", got.ConfigJSON["tone"])
	assert.NotContains(t, got.ConfigJSON, "length")
}
