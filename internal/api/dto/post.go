package dto

import "time"

// PostDTO 草稿帖子响应
type PostDTO struct {
	ID               uint64                 `json:"id"`
	SessionID        *uint64                `json:"session_id"`
	SkillSlug        *string                `json:"skill_slug"`
	Platform         string                 `json:"platform"`
	Kind             string                 `json:"kind"`
	Source           string                 `json:"source"`
	DraftContent     string                 `json:"draft_content"`
	PublishedContent *string                `json:"published_content"`
	TypefullyDraftID *string                `json:"typefully_draft_id"`
	XTweetID         *string                `json:"x_tweet_id"`
	XThreadRootID    *string                `json:"x_thread_root_id"`
	PlannedFor       *time.Time             `json:"planned_for"`
	PublishedAt      *time.Time             `json:"published_at"`
	MetadataJSON     map[string]interface{} `json:"metadata_json"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// PostPatchDTO 帖子修改请求：两个字段均可选，至少给出一个
type PostPatchDTO struct {
	DraftContent *string `json:"draft_content"`
	Approved     *bool   `json:"approved"`
}
