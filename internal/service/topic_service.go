package service

import (
	"PetOps/internal/model"
	"PetOps/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"math/rand"
	"sort"
	"time"
)

// TopicService 热点话题追踪器：模拟生成当日候选热点并合成测试问题。
// 实际接入微博热搜、抖音热点等数据源时只需替换 GetTopics 的来源
type TopicService struct {
	repo *repository.RecordRepo
}

func NewTopicService(repo *repository.RecordRepo) *TopicService {
	return &TopicService{
		repo: repo,
	}
}

// 节假日/节气热点，按月份
var holidayTopics = map[time.Month][]string{
	time.January:   {"新年愿望", "春节", "年终奖", "跨年", "元旦"},
	time.February:  {"春节", "情人节", "年后复工", "立春"},
	time.March:     {"妇女节", "315消费者权益日", "春游", "植树节"},
	time.April:     {"清明节", "愚人节", "踏青", "春暖花开"},
	time.May:       {"劳动节", "母亲节", "青年节", "立夏"},
	time.June:      {"儿童节", "端午节", "父亲节", "高考"},
	time.July:      {"建党节", "暑假", "毕业季", "夏日清凉"},
	time.August:    {"八一建军节", "七夕", "七夕节", "夏日清凉"},
	time.September: {"教师节", "中秋节", "白露", "秋分"},
	time.October:   {"国庆节", "中秋节", "重阳节", "黄金周"},
	time.November:  {"双十一", "感恩节", "光棍节", "秋冬换季"},
	time.December:  {"双十二", "圣诞节", "跨年", "年终总结", "冬至"},
}

// 星期相关热点
var weekdayTopics = map[time.Weekday][]string{
	time.Monday:    {"周一综合症", "新的一周", "工作日"},
	time.Tuesday:   {"周二快乐", "周中休息", "工作日"},
	time.Wednesday: {"周三过半", "周中", "工作日"},
	time.Thursday:  {"周四期待", "周五前夜", "周四快乐"},
	time.Friday:    {"周五啦", "周末出行", "周五快乐", "周末计划"},
	time.Saturday:  {"周末愉快", "周六休闲", "周末生活", "周末计划"},
	time.Sunday:    {"周日休闲", "周末生活", "周日晚上"},
}

// 通用热点话题池（模拟）
var generalTopics = []string{
	"职场生存", "副业赚钱", "打工人", "租房", "相亲",
	"一人食", "租房改造", "精致生活", "极简生活", "养生",
	"追剧", "综艺", "电影", "游戏", "追星",
	"恋爱", "婚姻", "友情", "原生家庭", "自我成长",
	"换季穿搭", "换季护肤", "夏季清凉", "冬季保暖", "春季过敏",
	"周末计划", "假期旅行", "宅家生活", "下班后的生活",
}

// 宠物相关热点
var petTopics = []string{
	"宠物情缘", "毛孩子", "萌宠", "宠物日常", "铲屎官",
	"猫奴", "狗奴", "宠物表情包", "宠物趣事", "宠物美容",
}

// GetTopics 生成当日候选热点，按热度降序（稳定排序，同热度保持插入序）
func (s *TopicService) GetTopics() []model.Topic {
	now := time.Now()
	topics := make([]model.Topic, 0, 16)

	for _, t := range firstN(holidayTopics[now.Month()], 2) {
		topics = append(topics, model.Topic{
			Topic:    t,
			Category: model.CategoryHoliday,
			Heat:     heatBetween(80, 100),
			Source:   model.SourceCalendar,
		})
	}

	for _, t := range firstN(weekdayTopics[now.Weekday()], 1) {
		topics = append(topics, model.Topic{
			Topic:    t,
			Category: model.CategoryWeekday,
			Heat:     heatBetween(60, 90),
			Source:   model.SourceCalendar,
		})
	}

	for _, t := range sampleStrings(generalTopics, 8) {
		topics = append(topics, model.Topic{
			Topic:    t,
			Category: model.CategoryGeneral,
			Heat:     heatBetween(50, 85),
			Source:   model.SourceGeneral,
		})
	}

	for _, t := range sampleStrings(petTopics, 5) {
		topics = append(topics, model.Topic{
			Topic:    t,
			Category: model.CategoryPetRelated,
			Heat:     heatBetween(55, 90),
			Source:   model.SourcePet,
		})
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Heat > topics[j].Heat
	})

	return topics
}

// 可用于融合的话题类别
var fusableCategories = map[string]bool{
	model.CategoryPetRelated: true,
	model.CategoryGeneral:    true,
	model.CategoryWeekday:    true,
	model.CategoryHoliday:    true,
}

// Integrate 把热点话题与基础选题融合成一个标题。
// 没有候选热点时原样返回基础选题
func (s *TopicService) Integrate(base string, topics []model.Topic) string {
	if len(topics) == 0 {
		return base
	}

	relevant := make([]model.Topic, 0, len(topics))
	for _, t := range topics {
		if fusableCategories[t.Category] && t.Heat > 60 {
			relevant = append(relevant, t)
		}
	}
	if len(relevant) == 0 {
		relevant = topics[:min(3, len(topics))]
	}

	hot := relevant[rand.Intn(len(relevant))]

	styles := []string{
		fmt.Sprintf("当%s遇上宠物：%s", hot.Topic, base),
		fmt.Sprintf("%s期间，宠物%s", hot.Topic, base),
		fmt.Sprintf("宠物视角看%s：%s", hot.Topic, base),
		fmt.Sprintf("%s限定：%s", hot.Topic, base),
		fmt.Sprintf("铲屎官必知：%s与%s", hot.Topic, base),
	}

	return styles[rand.Intn(len(styles))]
}

type questionTemplate struct {
	text    string
	optionA string
	optionB string
	correct string
}

// 每个类别两套模板，正确选项是内容创作时定死的，不做随机
var questionBank = map[string][]questionTemplate{
	"基础知识": {
		{
			text:    "关于%s，你知道多少？",
			optionA: "了解很多，能详细说明",
			optionB: "只知道一点点",
			correct: "A",
		},
		{
			text:    "养宠物的人必须知道的一件事：%s",
			optionA: "正确答案",
			optionB: "错误答案",
			correct: "A",
		},
	},
	"行为解读": {
		{
			text:    "当你家的宠物%s时，它在想什么？",
			optionA: "在表达开心/满足",
			optionB: "在表达不满/烦躁",
			correct: "A",
		},
		{
			text:    "如果你的宠物%s，你应该怎么做？",
			optionA: "立即回应",
			optionB: "不予理会",
			correct: "A",
		},
	},
	"趣味挑战": {
		{
			text:    "测试你对%s的了解程度！",
			optionA: "全部答对",
			optionB: "错一两个",
			correct: "A",
		},
		{
			text:    "关于%s，99%%的主人都会答错！",
			optionA: "我不信",
			optionB: "真的吗",
			correct: "A",
		},
	},
}

// 宠物话题分类，问题从对应类别的话题里抽取
var categoryTopics = map[string][]string{
	"基础知识": {
		"猫咪不能吃的食物", "狗狗不能吃的食物", "猫咪的寿命", "狗狗的寿命",
		"猫咪多久洗一次澡", "狗狗多久洗一次澡", "猫咪驱虫频率", "狗狗驱虫频率",
		"猫咪打疫苗时间", "狗狗打疫苗时间",
	},
	"行为解读": {
		"猫咪摇尾巴代表什么", "狗狗摇尾巴代表什么", "猫咪呼噜呼噜的声音", "狗狗拆家原因",
		"猫咪蹭你的原因", "猫咪炸毛是什么意思", "狗狗露肚皮的意思", "猫咪弓背的原因",
		"狗狗追尾巴的原因", "猫咪瞳孔变化的含义",
	},
	"趣味挑战": {
		"猫咪最讨厌的味道", "狗狗最讨厌的味道", "猫咪能看懂电视吗", "狗狗能记住多少单词",
		"猫咪的梦境", "狗狗的梦境", "猫咪为什么怕黄瓜", "狗狗为什么爱追松鼠",
		"猫咪的胡须作用", "狗狗的舌头功能",
	},
}

// GenerateQuestions 合成测试问题：类别不重复抽取，
// 数量受可用类别数限制，永远不会出错
func (s *TopicService) GenerateQuestions(count int) []model.Question {
	categories := make([]string, 0, len(questionBank))
	for category := range questionBank {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	rand.Shuffle(len(categories), func(i, j int) {
		categories[i], categories[j] = categories[j], categories[i]
	})

	if count > len(categories) {
		count = len(categories)
	}
	if count < 0 {
		count = 0
	}

	questions := make([]model.Question, 0, count)
	for _, category := range categories[:count] {
		pool := categoryTopics[category]
		topic := pool[rand.Intn(len(pool))]
		tpl := questionBank[category][rand.Intn(len(questionBank[category]))]

		questions = append(questions, model.Question{
			Type:     category,
			Topic:    topic,
			Question: fmt.Sprintf(tpl.text, topic),
			Options: map[string]string{
				"A": tpl.optionA,
				"B": tpl.optionB,
			},
			CorrectAnswer: tpl.correct,
			Explanation:   fmt.Sprintf("关于%s的正确答案是%s，你答对了吗？", topic, tpl.correct),
		})
	}

	return questions
}

// Prepare 生成当日热点与问题，并落盘审计记录。
// 审计记录写失败只记日志，不阻塞后续内容生成
func (s *TopicService) Prepare(ctx context.Context, daypart string) ([]model.Topic, []model.Question) {
	topics := s.GetTopics()

	record := &model.TopicRecord{
		Date:      time.Now().Format("2006-01-02"),
		Daypart:   daypart,
		FetchedAt: time.Now(),
		Topics:    topics,
	}
	if err := s.repo.SaveTopics(record); err != nil {
		log.WarnContext(ctx, "热点话题记录保存失败", "err", err)
	}

	return topics, s.GenerateQuestions(3)
}

func heatBetween(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

func firstN(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

func sampleStrings(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]string{}, pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
