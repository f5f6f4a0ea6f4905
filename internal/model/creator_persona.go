package model

import (
	"time"

	"gorm.io/datatypes"
)

// 人设状态为开放字符串集合，仅列出已观测到的取值
const (
	PersonaStatusActive   = "active"
	PersonaStatusInactive = "inactive"
)

// CreatorPersona 创作者人设快照主体，handle 为自然键
//
// 删除人设时必须先删除其 CreatorPersonaPost 与 CreatorPersonaRun，
// 库表层没有外键级联。
type CreatorPersona struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Handle      string    `gorm:"uniqueIndex;not null" json:"handle"`
	DisplayName *string   `json:"display_name"`
	Status      string    `gorm:"default:active" json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CreatorPersona) TableName() string { return "creator_personas" }

// CreatorPersonaRun 一次人设抓取执行记录
type CreatorPersonaRun struct {
	ID             uint64            `gorm:"primaryKey" json:"id"`
	PersonaID      uint64            `gorm:"index;not null" json:"persona_id"`
	RunAt          time.Time         `json:"run_at"`
	WindowDays     int               `json:"window_days"`
	Source         string            `json:"source"`
	OutputJSONPath string            `gorm:"column:output_json_path" json:"output_json_path"`
	OutputMDPath   string            `gorm:"column:output_md_path" json:"output_md_path"`
	SummaryJSON    datatypes.JSONMap `gorm:"column:summary_json" json:"summary_json"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (CreatorPersonaRun) TableName() string { return "creator_persona_runs" }

// CreatorPersonaPost 抓取到的单条帖子及其互动指标
type CreatorPersonaPost struct {
	ID              uint64            `gorm:"primaryKey" json:"id"`
	PersonaID       uint64            `gorm:"index;not null" json:"persona_id"`
	TweetID         *string           `json:"tweet_id"`
	TweetURL        *string           `gorm:"column:tweet_url" json:"tweet_url"`
	Content         *string           `json:"content"`
	Impressions     *int64            `json:"impressions"`
	Likes           *int64            `json:"likes"`
	Replies         *int64            `json:"replies"`
	Retweets        *int64            `json:"retweets"`
	Quotes          *int64            `json:"quotes"`
	Bookmarks       *int64            `json:"bookmarks"`
	EngagementScore *int64            `json:"engagement_score"`
	RawJSON         datatypes.JSONMap `gorm:"column:raw_json" json:"raw_json"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (CreatorPersonaPost) TableName() string { return "creator_persona_posts" }
