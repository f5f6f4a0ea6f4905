package api

import "PulseOS/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	TodayHandler        *handler.TodayHandler
	PostHandler         *handler.PostHandler
	ConversationHandler *handler.ConversationHandler
	SkillHandler        *handler.SkillHandler
	CreatorHandler      *handler.CreatorHandler
}
