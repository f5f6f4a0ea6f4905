package dto

import "time"

// PersonaDTO 创作者人设响应
type PersonaDTO struct {
	ID          uint64    `json:"id"`
	Handle      string    `json:"handle"`
	DisplayName *string   `json:"display_name"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonaRunDTO 人设抓取记录响应
type PersonaRunDTO struct {
	ID             uint64                 `json:"id"`
	PersonaID      uint64                 `json:"persona_id"`
	RunAt          time.Time              `json:"run_at"`
	WindowDays     int                    `json:"window_days"`
	Source         string                 `json:"source"`
	OutputJSONPath string                 `json:"output_json_path"`
	OutputMDPath   string                 `json:"output_md_path"`
	SummaryJSON    map[string]interface{} `json:"summary_json"`
	CreatedAt      time.Time              `json:"created_at"`
}

// PersonaPostDTO 人设抓取帖子响应
type PersonaPostDTO struct {
	ID              uint64                 `json:"id"`
	PersonaID       uint64                 `json:"persona_id"`
	TweetID         *string                `json:"tweet_id"`
	TweetURL        *string                `json:"tweet_url"`
	Content         *string                `json:"content"`
	Impressions     *int64                 `json:"impressions"`
	Likes           *int64                 `json:"likes"`
	Replies         *int64                 `json:"replies"`
	Retweets        *int64                 `json:"retweets"`
	Quotes          *int64                 `json:"quotes"`
	Bookmarks       *int64                 `json:"bookmarks"`
	EngagementScore *int64                 `json:"engagement_score"`
	RawJSON         map[string]interface{} `json:"raw_json"`
	CreatedAt       time.Time              `json:"created_at"`
}

// CreatorItemDTO 人设及其最近抓取与高互动帖子
type CreatorItemDTO struct {
	Persona   *PersonaDTO       `json:"persona"`
	LatestRun *PersonaRunDTO    `json:"latest_run"`
	Posts     []*PersonaPostDTO `json:"posts"`
}

// PersonaStatusDTO 替换人设状态请求
type PersonaStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// CreatorRunDTO 人设抓取请求，字段命名与前端约定保持 camelCase
type CreatorRunDTO struct {
	Handle     string `json:"handle" binding:"required"`
	WindowDays int    `json:"windowDays"`
	Limit      int    `json:"limit"`
	TopN       int    `json:"topN"`
	Force      bool   `json:"force"`
}

// CaptureResultDTO 人设抓取结果
type CaptureResultDTO struct {
	Result map[string]interface{} `json:"result"`
}
