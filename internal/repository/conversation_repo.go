package repository

import (
	"PulseOS/internal/model"
	"context"

	"gorm.io/gorm"
)

type ConversationRepo interface {
	// GetPending 查询所有 status=pending 的会话，按创建时间倒序
	GetPending(ctx context.Context) ([]*model.Conversation, error)
	// UpdateStatus 替换会话状态
	UpdateStatus(ctx context.Context, conversationID uint64, status string) error
	// UpdateReply 替换建议回复
	UpdateReply(ctx context.Context, conversationID uint64, reply string) error
}

type conversationRepoImpl struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepoImpl{db: db}
}

func (s *conversationRepoImpl) GetPending(ctx context.Context) ([]*model.Conversation, error) {
	var convs []*model.Conversation
	err := s.db.WithContext(ctx).
		Where("status = ?", model.ConversationStatusPending).
		Order("created_at DESC").
		Find(&convs).Error
	if IsMissingTable(err) {
		return []*model.Conversation{}, nil
	}
	return convs, err
}

func (s *conversationRepoImpl) UpdateStatus(ctx context.Context, conversationID uint64, status string) error {
	return s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", conversationID).
		Update("status", status).Error
}

func (s *conversationRepoImpl) UpdateReply(ctx context.Context, conversationID uint64, reply string) error {
	return s.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", conversationID).
		Update("suggested_reply", reply).Error
}
