package service

import (
	"PulseOS/internal/repository"
	"context"
)

type ConversationService interface {
	// UpdateStatus 替换会话状态，状态为开放字符串集合不做枚举校验
	UpdateStatus(ctx context.Context, conversationID uint64, status string) error
	// UpdateReply 替换建议回复文本
	UpdateReply(ctx context.Context, conversationID uint64, reply string) error
}

type conversationServiceImpl struct {
	convRepo repository.ConversationRepo
}

func NewConversationService(convRepo repository.ConversationRepo) ConversationService {
	return &conversationServiceImpl{convRepo: convRepo}
}

func (s *conversationServiceImpl) UpdateStatus(ctx context.Context, conversationID uint64, status string) error {
	if status == "" {
		return ErrParamInvalid
	}
	if err := s.convRepo.UpdateStatus(ctx, conversationID, status); err != nil {
		return translateStoreError(err)
	}
	return nil
}

func (s *conversationServiceImpl) UpdateReply(ctx context.Context, conversationID uint64, reply string) error {
	if err := s.convRepo.UpdateReply(ctx, conversationID, reply); err != nil {
		return translateStoreError(err)
	}
	return nil
}
