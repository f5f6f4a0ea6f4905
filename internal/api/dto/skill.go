package dto

import "time"

// SkillDTO 技能响应
type SkillDTO struct {
	ID         uint64                 `json:"id"`
	Slug       string                 `json:"slug"`
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Status     string                 `json:"status"`
	Priority   float64                `json:"priority"`
	ConfigJSON map[string]interface{} `json:"config_json"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// SkillConfigDTO 整体替换技能配置请求
type SkillConfigDTO struct {
	ConfigJSON map[string]interface{} `json:"config_json" binding:"required"`
}
