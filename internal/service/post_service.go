package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/repository"
	"context"
)

type PostService interface {
	// Patch 应用帖子修改：替换草稿内容、写入审批标记，二者可同时给出
	Patch(ctx context.Context, postID uint64, req *dto.PostPatchDTO) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{postRepo: postRepo}
}

func (s *postServiceImpl) Patch(ctx context.Context, postID uint64, req *dto.PostPatchDTO) error {
	if req.DraftContent == nil && req.Approved == nil {
		return ErrParamInvalid
	}

	if req.DraftContent != nil {
		if err := s.postRepo.UpdateContent(ctx, postID, *req.DraftContent); err != nil {
			return translateStoreError(err)
		}
	}

	if req.Approved != nil && *req.Approved {
		if err := s.postRepo.MarkApproved(ctx, postID); err != nil {
			return translateStoreError(err)
		}
	}

	return nil
}

// translateStoreError 把底层存储错误翻译为领域错误，仅识别"表未建立"
func translateStoreError(err error) error {
	if repository.IsMissingTable(err) {
		return ErrStoreNotReady
	}
	return err
}
