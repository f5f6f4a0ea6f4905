package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/model"
	"PulseOS/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// 人设页帖子条数：列表页取 10，详情页取 15
const (
	creatorListPostLimit   = 10
	creatorDetailPostLimit = 15
)

type CreatorService interface {
	// List 返回全部人设，每项附带最近抓取记录与高互动帖子
	List(ctx context.Context) ([]*dto.CreatorItemDTO, error)
	// Get 按 handle 返回单个人设及其明细
	Get(ctx context.Context, handle string) (*dto.CreatorItemDTO, error)
	// UpdateStatus 替换人设状态
	UpdateStatus(ctx context.Context, handle string, status string) error
	// Delete 级联删除人设及其全部抓取数据
	Delete(ctx context.Context, handle string) error
}

type creatorServiceImpl struct {
	creatorRepo repository.CreatorRepo
}

func NewCreatorService(creatorRepo repository.CreatorRepo) CreatorService {
	return &creatorServiceImpl{creatorRepo: creatorRepo}
}

func (s *creatorServiceImpl) List(ctx context.Context) ([]*dto.CreatorItemDTO, error) {
	personas, err := s.creatorRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CreatorItemDTO, 0, len(personas))
	for _, persona := range personas {
		item, err := s.buildItem(ctx, persona, creatorListPostLimit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *creatorServiceImpl) Get(ctx context.Context, handle string) (*dto.CreatorItemDTO, error) {
	persona, err := s.creatorRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}
	return s.buildItem(ctx, persona, creatorDetailPostLimit)
}

func (s *creatorServiceImpl) buildItem(ctx context.Context, persona *model.CreatorPersona, postLimit int) (*dto.CreatorItemDTO, error) {
	personaDTO := &dto.PersonaDTO{}
	if err := copier.Copy(personaDTO, persona); err != nil {
		return nil, err
	}

	run, err := s.creatorRepo.GetLatestRun(ctx, persona.Handle)
	if err != nil {
		return nil, err
	}
	var runDTO *dto.PersonaRunDTO
	if run != nil {
		runDTO = &dto.PersonaRunDTO{}
		if err = copier.Copy(runDTO, run); err != nil {
			return nil, err
		}
	}

	posts, err := s.creatorRepo.GetPosts(ctx, persona.ID, postLimit)
	if err != nil {
		return nil, err
	}
	postDTOs := make([]*dto.PersonaPostDTO, 0, len(posts))
	for _, post := range posts {
		item := &dto.PersonaPostDTO{}
		if err = copier.Copy(item, post); err != nil {
			return nil, err
		}
		postDTOs = append(postDTOs, item)
	}

	return &dto.CreatorItemDTO{
		Persona:   personaDTO,
		LatestRun: runDTO,
		Posts:     postDTOs,
	}, nil
}

func (s *creatorServiceImpl) UpdateStatus(ctx context.Context, handle string, status string) error {
	if status == "" {
		return ErrParamInvalid
	}
	if err := s.creatorRepo.UpdateStatus(ctx, handle, status); err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (s *creatorServiceImpl) Delete(ctx context.Context, handle string) error {
	err := s.creatorRepo.Delete(ctx, handle)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPersonaNotFound
	}
	if err != nil {
		return translateStoreError(err)
	}
	return nil
}
