package service

import (
	"PulseOS/internal/api/dto"
	"PulseOS/internal/repository"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

const (
	TaskTypePost         = "post"
	TaskTypeConversation = "conversation"

	// PreviewLimit 预览文本长度上限，按用户可见字符计数
	PreviewLimit = 140

	fallbackSkillTitle = "unspecified skill"
	fallbackAuthor     = "unknown author"
)

type TodayService interface {
	// GetToday 返回今日评审页数据包：简报、待处理帖子与会话、聚合工作清单
	GetToday(ctx context.Context) (*dto.TodayDTO, error)
}

type todayServiceImpl struct {
	briefRepo repository.BriefRepo
	postRepo  repository.PostRepo
	convRepo  repository.ConversationRepo
}

func NewTodayService(briefRepo repository.BriefRepo, postRepo repository.PostRepo, convRepo repository.ConversationRepo) TodayService {
	return &todayServiceImpl{
		briefRepo: briefRepo,
		postRepo:  postRepo,
		convRepo:  convRepo,
	}
}

func (s *todayServiceImpl) GetToday(ctx context.Context) (*dto.TodayDTO, error) {
	date := time.Now().Format("2006-01-02")

	brief, err := s.briefRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	convs, err := s.convRepo.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	var briefDTO *dto.BriefDTO
	if brief != nil {
		briefDTO = &dto.BriefDTO{}
		if err = copier.Copy(briefDTO, brief); err != nil {
			return nil, err
		}
	}

	postDTOs := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item := &dto.PostDTO{}
		if err = copier.Copy(item, p); err != nil {
			return nil, err
		}
		postDTOs = append(postDTOs, item)
	}

	convDTOs := make([]*dto.ConversationDTO, 0, len(convs))
	for _, c := range convs {
		item := &dto.ConversationDTO{}
		if err = copier.Copy(item, c); err != nil {
			return nil, err
		}
		convDTOs = append(convDTOs, item)
	}

	return &dto.TodayDTO{
		Brief:         briefDTO,
		Posts:         postDTOs,
		Conversations: convDTOs,
		Tasks:         BuildTasks(postDTOs, convDTOs),
	}, nil
}

// BuildTasks 把待处理帖子与会话投影成统一工作清单
//
// 两个输入序列各自已按最新优先排好，这里只做帖子在前的顺序拼接，
// 不跨类型重排。纯函数：相同输入必然产生相同序列，上层据此在数据
// 刷新后保持当前选中项。
func BuildTasks(posts []*dto.PostDTO, conversations []*dto.ConversationDTO) []*dto.TaskItemDTO {
	tasks := make([]*dto.TaskItemDTO, 0, len(posts)+len(conversations))

	for _, post := range posts {
		title := fallbackSkillTitle
		if post.SkillSlug != nil && *post.SkillSlug != "" {
			title = *post.SkillSlug
		}

		tasks = append(tasks, &dto.TaskItemDTO{
			Key:      TaskTypePost + "-" + strconv.FormatUint(post.ID, 10),
			Type:     TaskTypePost,
			Title:    title,
			Subtitle: fmt.Sprintf("%s • %s", post.Kind, post.Platform),
			Preview:  PreviewText(post.DraftContent, PreviewLimit),
			Post:     post,
		})
	}

	for _, conv := range conversations {
		title := fallbackSkillTitle
		if conv.SkillSlug != nil && *conv.SkillSlug != "" {
			title = *conv.SkillSlug
		}

		subtitle := fallbackAuthor
		if conv.AuthorHandle != nil && *conv.AuthorHandle != "" {
			subtitle = *conv.AuthorHandle
		}

		snippet := ""
		if conv.Snippet != nil {
			snippet = *conv.Snippet
		}

		tasks = append(tasks, &dto.TaskItemDTO{
			Key:          TaskTypeConversation + "-" + strconv.FormatUint(conv.ID, 10),
			Type:         TaskTypeConversation,
			Title:        title,
			Subtitle:     subtitle,
			Preview:      PreviewText(snippet, PreviewLimit),
			Conversation: conv,
		})
	}

	return tasks
}

// PreviewText 按用户可见字符截断文本，超限时追加截断标记。
// 以 rune 计数，保证多字节字符不会被从中间截断。
func PreviewText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
