package service

import (
	"PulseOS/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCreatorRepo struct {
	personas map[string]*model.CreatorPersona
	runs     map[string]*model.CreatorPersonaRun
	posts    map[uint64][]*model.CreatorPersonaPost

	lastPostLimit int
	deleted       []string
}

func newFakeCreatorRepo() *fakeCreatorRepo {
	return &fakeCreatorRepo{
		personas: map[string]*model.CreatorPersona{},
		runs:     map[string]*model.CreatorPersonaRun{},
		posts:    map[uint64][]*model.CreatorPersonaPost{},
	}
}

func (s *fakeCreatorRepo) GetAll(ctx context.Context) ([]*model.CreatorPersona, error) {
	result := make([]*model.CreatorPersona, 0, len(s.personas))
	for _, persona := range s.personas {
		result = append(result, persona)
	}
	return result, nil
}

func (s *fakeCreatorRepo) GetByHandle(ctx context.Context, handle string) (*model.CreatorPersona, error) {
	return s.personas[handle], nil
}

func (s *fakeCreatorRepo) GetLatestRun(ctx context.Context, handle string) (*model.CreatorPersonaRun, error) {
	return s.runs[handle], nil
}

func (s *fakeCreatorRepo) GetPosts(ctx context.Context, personaID uint64, limit int) ([]*model.CreatorPersonaPost, error) {
	s.lastPostLimit = limit
	return s.posts[personaID], nil
}

func (s *fakeCreatorRepo) UpdateStatus(ctx context.Context, handle string, status string) error {
	if persona, ok := s.personas[handle]; ok {
		persona.Status = status
	}
	return nil
}

func (s *fakeCreatorRepo) Delete(ctx context.Context, handle string) error {
	if _, ok := s.personas[handle]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.personas, handle)
	s.deleted = append(s.deleted, handle)
	return nil
}

func TestCreatorService_Get(t *testing.T) {
	repo := newFakeCreatorRepo()
	repo.personas["alice"] = &model.CreatorPersona{ID: 1, Handle: "alice", Status: model.PersonaStatusActive}
	repo.runs["alice"] = &model.CreatorPersonaRun{ID: 10, PersonaID: 1, RunAt: time.Now(), Source: "live"}
	repo.posts[1] = []*model.CreatorPersonaPost{{ID: 100, PersonaID: 1}}
	svc := NewCreatorService(repo)

	item, err := svc.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", item.Persona.Handle)
	require.NotNil(t, item.LatestRun)
	assert.Equal(t, "live", item.LatestRun.Source)
	assert.Len(t, item.Posts, 1)
	assert.Equal(t, creatorDetailPostLimit, repo.lastPostLimit)
}

func TestCreatorService_Get_NoRunYet(t *testing.T) {
	repo := newFakeCreatorRepo()
	repo.personas["alice"] = &model.CreatorPersona{ID: 1, Handle: "alice"}
	svc := NewCreatorService(repo)

	item, err := svc.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, item.LatestRun)
	assert.Empty(t, item.Posts)
}

func TestCreatorService_Get_NotFound(t *testing.T) {
	svc := NewCreatorService(newFakeCreatorRepo())

	_, err := svc.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrPersonaNotFound)
}

func TestCreatorService_List_UsesListLimit(t *testing.T) {
	repo := newFakeCreatorRepo()
	repo.personas["alice"] = &model.CreatorPersona{ID: 1, Handle: "alice"}
	svc := NewCreatorService(repo)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, creatorListPostLimit, repo.lastPostLimit)
}

func TestCreatorService_UpdateStatus_EmptyStatus(t *testing.T) {
	svc := NewCreatorService(newFakeCreatorRepo())

	err := svc.UpdateStatus(context.Background(), "alice", "")
	require.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreatorService_Delete(t *testing.T) {
	repo := newFakeCreatorRepo()
	repo.personas["alice"] = &model.CreatorPersona{ID: 1, Handle: "alice"}
	svc := NewCreatorService(repo)

	require.NoError(t, svc.Delete(context.Background(), "alice"))
	assert.Equal(t, []string{"alice"}, repo.deleted)

	err := svc.Delete(context.Background(), "alice")
	require.ErrorIs(t, err, ErrPersonaNotFound)
}
