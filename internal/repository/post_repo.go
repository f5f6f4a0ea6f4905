package repository

import (
	"PulseOS/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostRepo interface {
	// GetPending 查询所有未发布的帖子，按创建时间倒序
	GetPending(ctx context.Context) ([]*model.Post, error)
	// UpdateContent 替换草稿内容
	UpdateContent(ctx context.Context, postID uint64, draftContent string) error
	// MarkApproved 在 metadata_json 中写入审批标记，重复调用幂等
	MarkApproved(ctx context.Context, postID uint64) error
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

func (s *postRepoImpl) GetPending(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at DESC").
		Find(&posts).Error
	if IsMissingTable(err) {
		return []*model.Post{}, nil
	}
	return posts, err
}

func (s *postRepoImpl) UpdateContent(ctx context.Context, postID uint64, draftContent string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("draft_content", draftContent).Error
}

// MarkApproved 读取-修改-写回 metadata_json，放在单个事务中避免并发审批丢失更新
func (s *postRepoImpl) MarkApproved(ctx context.Context, postID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post model.Post
		if err := tx.Select("id", "metadata_json").Where("id = ?", postID).First(&post).Error; err != nil {
			// 目标行不存在时不报错，与其他零行写入保持一致
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		metadata := post.MetadataJSON
		if metadata == nil {
			metadata = datatypes.JSONMap{}
		}
		metadata[model.MetaApproved] = true
		metadata[model.MetaApprovedAt] = time.Now().UTC().Format(time.RFC3339)

		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			Update("metadata_json", metadata).Error
	})
}
