package model

import (
	"time"

	"gorm.io/datatypes"
)

// 审批标记，写入 metadata_json
const (
	MetaApproved   = "approved"
	MetaApprovedAt = "approved_at"
)

// Post 草稿帖子。published_at 为空即表示待处理
type Post struct {
	ID               uint64            `gorm:"primaryKey" json:"id"`
	SessionID        *uint64           `json:"session_id"`
	SkillSlug        *string           `json:"skill_slug"`
	Platform         string            `gorm:"not null" json:"platform"`
	Kind             string            `gorm:"not null" json:"kind"`
	Source           string            `gorm:"not null" json:"source"`
	DraftContent     string            `gorm:"not null" json:"draft_content"`
	PublishedContent *string           `json:"published_content"`
	TypefullyDraftID *string           `gorm:"column:typefully_draft_id" json:"typefully_draft_id"`
	XTweetID         *string           `gorm:"column:x_tweet_id" json:"x_tweet_id"`
	XThreadRootID    *string           `gorm:"column:x_thread_root_id" json:"x_thread_root_id"`
	PlannedFor       *time.Time        `json:"planned_for"`
	PublishedAt      *time.Time        `json:"published_at"`
	MetadataJSON     datatypes.JSONMap `gorm:"column:metadata_json" json:"metadata_json"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (Post) TableName() string { return "posts" }
