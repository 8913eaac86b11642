package service

import (
	"PetOps/internal/api/config"
	"PetOps/internal/model"
	"PetOps/internal/pkg/imagegen"
	"PetOps/internal/pkg/llm"
	"PetOps/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ContentService 内容创作器：把话题和问题组装成一篇完整的测试类笔记
type ContentService struct {
	topics *TopicService
	images *imagegen.Client
	repo   *repository.RecordRepo
}

func NewContentService(topics *TopicService, images *imagegen.Client, repo *repository.RecordRepo) *ContentService {
	return &ContentService{
		topics: topics,
		images: images,
		repo:   repo,
	}
}

var petTypes = []string{"猫咪", "狗狗", "猫咪和狗狗"}

const systemRole = "你是一位小红书爆款内容专家，擅长创作高互动、高评论的宠物测试类内容。"

const bodyContentPrompt = `
你是一位小红书爆款宠物内容专家。请为一篇宠物测试类笔记创作正文。

内容信息：
- 宠物类型：%s
- 问题数量：%d个
- 测试类型：%s

正文要求：
1. 开头：吸引眼球的引入（可以用emoji）
2. 互动引导：邀请粉丝参与测试
3. 结果分级：答对3个=优秀铲屎官，答对2个=合格铲屎官，答对1个=差劲铲屎官
4. 行动号召：请在评论区留下你的答案
5. 时效性：次日会揭晓答案
6. 福利诱饵：随机抽取1-3名优秀铲屎官送出宠物试用装
7. 号召：欢迎大家积极参与
8. 字数：%d-%d字
9. 风格：小红书风格，轻松活泼，适当使用emoji
10. 语言：简体中文，使用中文标点

请输出JSON格式：
{
    "intro": "开头引入段落（2-3句话）",
    "body": "正文主体，包含互动引导和分级说明",
    "cta": "行动号召和福利说明",
    "hashtags": ["标签1", "标签2", "标签3", "标签4", "标签5"]
}
`

const mainPosterPrompt = `
Create a large text poster for Xiaohongshu (Chinese social media) about a pet ownership test quiz.

Design requirements:
- Style: Large text poster, bold and eye-catching, modern design
- Main text: "测测你是不是合格铲屎官？送宠物试用装了！" (Test if you're a qualified pet owner! Get free pet samples!)
- Text style: Bold, cute Chinese font
- Background: Warm and inviting pet-themed background
- Color scheme: Fresh and energetic (coral red, mint green, sunny yellow)
- Add cute pet elements (paws, hearts, stars)
- Overall vibe: Fun, interactive, inviting participation

Please output just the image prompt in English.
`

const questionCardPrompt = `
Create a fun cartoon-style question card for a pet ownership quiz on Xiaohongshu.

Context: %s
Type: %s
Options: A) %s  B) %s

Design requirements:
- Style: Large text poster + cute cartoon style, funny and entertaining
- Text: Big and bold question text with A/B options clearly shown
- Background: Cute cartoon pet background with fun elements
- Color scheme: Light and playful (light pink, light blue, mint green)
- Add comic elements: speech bubbles, question marks, playful stickers
- Overall vibe: Engaging, shareable, encourages comments

Please output just the image prompt in English.
`

const (
	bodyMinWords = 150
	bodyMaxWords = 300
)

// Compose 组装一篇完整笔记。问题不足时用预设库补齐，
// 正文生成失败时退回默认模板，任何情况下都返回可发布的内容
func (s *ContentService) Compose(ctx context.Context, daypart string, topics []model.Topic, questions []model.Question) *model.Post {
	petType := petTypes[rand.Intn(len(petTypes))]

	hotTopic := "日常"
	if len(topics) > 0 {
		hotTopic = topics[0].Topic
	}

	questions = s.fillQuestions(petType, questions)
	body := s.generateBody(ctx, petType, questions)

	return &model.Post{
		Meta: model.PostMeta{
			Date:        time.Now().Format("2006-01-02"),
			Daypart:     daypart,
			PetType:     petType,
			HotTopic:    hotTopic,
			GeneratedAt: time.Now(),
		},
		Questions:    questions,
		Body:         body,
		ImagePrompts: buildImagePrompts(questions),
		CallToAction: model.CallToAction{
			Scoring: map[string]string{
				"excellent": "答对3个 = 优秀铲屎官 🌟",
				"qualified": "答对2个 = 合格铲屎官 💪",
				"poor":      "答对1个 = 差劲铲屎官 😅",
			},
			Action:        "请在评论区留下你的答案",
			RevealTime:    "次日会揭晓答案",
			Giveaway:      "随机抽取1-3名优秀铲屎官送出宠物试用装",
			Encouragement: "欢迎大家积极参与",
		},
	}
}

// fillQuestions 补齐到 3 个问题，超出则截断
func (s *ContentService) fillQuestions(petType string, questions []model.Question) []model.Question {
	if len(questions) >= 3 {
		return questions[:3]
	}

	fallback := fallbackQuestions(petType)
	rand.Shuffle(len(fallback), func(i, j int) {
		fallback[i], fallback[j] = fallback[j], fallback[i]
	})

	for _, q := range fallback {
		if len(questions) >= 3 {
			break
		}
		questions = append(questions, q)
	}
	return questions
}

// fallbackQuestions 预设问题库，LLM 不可用或问题不足时兜底
func fallbackQuestions(petType string) []model.Question {
	raw := []struct {
		question string
		optionA  string
		optionB  string
		correct  string
	}{
		{fmt.Sprintf("以下哪种食物%s绝对不能吃？", petType), "鸡肉", "巧克力", "B"},
		{fmt.Sprintf("%s多久需要驱虫一次？", petType), "1个月", "3个月", "B"},
		{fmt.Sprintf("如果%s对你露出肚皮，说明什么？", petType), "想让你摸", "完全信任你", "B"},
		{fmt.Sprintf("%s快速摇尾巴代表什么？", petType), "开心", "烦躁", "B"},
		{fmt.Sprintf("你觉得%s能听懂你说话吗？", petType), "能听懂", "完全听不懂", "A"},
		{fmt.Sprintf("如果%s会说话，第一句会说什么？", petType), "铲屎的", "喵/汪", "A"},
	}

	questions := make([]model.Question, 0, len(raw))
	for _, q := range raw {
		questions = append(questions, model.Question{
			Type:     "随机问题",
			Question: q.question,
			Options: map[string]string{
				"A": q.optionA,
				"B": q.optionB,
			},
			CorrectAnswer: q.correct,
			Explanation:   fmt.Sprintf("正确答案是%s，你答对了吗？", q.correct),
		})
	}
	return questions
}

// generateBody 调用 LLM 生成正文，失败时退回默认模板
func (s *ContentService) generateBody(ctx context.Context, petType string, questions []model.Question) model.PostBody {
	prompt := fmt.Sprintf(bodyContentPrompt, petType, len(questions), "宠物知识测试", bodyMinWords, bodyMaxWords)

	raw, err := llm.FetchText(ctx, systemRole, prompt, 0.8)
	if err != nil {
		log.WarnContext(ctx, "正文生成失败，使用默认模板", "err", err)
		return defaultBody(petType, questions)
	}

	body, err := llm.ParseBody(raw)
	if err != nil {
		log.WarnContext(ctx, "正文解析失败，使用默认模板", "err", err)
		return defaultBody(petType, questions)
	}
	return *body
}

// defaultBody 默认正文模板，不依赖任何外部服务
func defaultBody(petType string, questions []model.Question) model.PostBody {
	var questionList strings.Builder
	for i, q := range questions {
		questionList.WriteString(fmt.Sprintf("\n❓ 第%d题：%s\n   A. %s  B. %s\n",
			i+1, q.Question, q.Options["A"], q.Options["B"]))
	}

	body := fmt.Sprintf(`📋 测试规则：
%s
📝 评分标准：
✅ 答对3个 = 优秀铲屎官 🌟
✅ 答对2个 = 合格铲屎官 💪
✅ 答对1个 = 差劲铲屎官 😅

💬 请在评论区留下你的答案，明天揭晓正确答案！`, questionList.String())

	return model.PostBody{
		Intro: fmt.Sprintf("🐱 各位铲屎官们看过来！今天给大家准备了一份%s知识测试卷，看看你是合格还是差劲的铲屎官？", petType),
		Body:  body,
		CTA: `🎁 福利时间！
随机抽取1-3名优秀铲屎官送出宠物试用装！
赶紧在评论区晒出你的答案吧～

👉 关注我，每天分享更多宠物知识！
欢迎大家积极参与，一起做更好的铲屎官！`,
		Hashtags: []string{petType, "铲屎官", "宠物测试", "养宠知识", "宠物试用装"},
	}
}

// buildImagePrompts 每篇固定 4 张图：1 张主海报 + 每题 1 张问题卡
func buildImagePrompts(questions []model.Question) model.ImagePrompts {
	prompts := model.ImagePrompts{
		MainPoster:    mainPosterPrompt,
		QuestionCards: make([]model.QuestionCardPrompt, 0, len(questions)),
	}

	for i, q := range questions {
		prompts.QuestionCards = append(prompts.QuestionCards, model.QuestionCardPrompt{
			QuestionNum: i + 1,
			Prompt:      fmt.Sprintf(questionCardPrompt, q.Question, q.Type, q.Options["A"], q.Options["B"]),
		})
	}
	return prompts
}

// GenerateImages 按提示词生成配图。单张失败只记日志，
// 发布环节按实际生成的图片数量处理
func (s *ContentService) GenerateImages(ctx context.Context, post *model.Post) {
	dir := filepath.Join(config.Cfg.Data.ContentDir, "xiaohongshu", post.Meta.Date)

	posterPath := filepath.Join(dir, fmt.Sprintf("%s_main_poster.png", post.Meta.Daypart))
	if err := s.images.Generate(ctx, post.ImagePrompts.MainPoster, posterPath); err != nil {
		log.WarnContext(ctx, "主海报生成失败", "err", err)
	}

	for _, card := range post.ImagePrompts.QuestionCards {
		cardPath := filepath.Join(dir, fmt.Sprintf("%d_question_%s.png", card.QuestionNum, post.Meta.Daypart))
		if err := s.images.Generate(ctx, card.Prompt, cardPath); err != nil {
			log.WarnContext(ctx, "问题卡片生成失败", "num", card.QuestionNum, "err", err)
		}
	}
}

// GenerateAndPersist 完整生成流程：热点与问题准备、内容组装、落盘、配图。
// 帖子落盘失败是致命错误，配图失败不是
func (s *ContentService) GenerateAndPersist(ctx context.Context, daypart string) (*model.Post, error) {
	topics, questions := s.topics.Prepare(ctx, daypart)

	post := s.Compose(ctx, daypart, topics, questions)
	if err := s.repo.SavePost(post); err != nil {
		return nil, errors.Wrap(err, "保存帖子记录失败")
	}
	log.InfoContext(ctx, "内容生成完成",
		"date", post.Meta.Date,
		"daypart", post.Meta.Daypart,
		"pet_type", post.Meta.PetType,
		"hot_topic", post.Meta.HotTopic,
	)

	s.GenerateImages(ctx, post)
	return post, nil
}
