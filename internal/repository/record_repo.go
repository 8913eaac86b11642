package repository

import (
	"PetOps/internal/model"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// RecordRepo 文件文档存储：每个键对应一个 JSON 文件，写入为整文件覆盖。
// 同一 (日期, 时段) 不做并发写保护，由外部调度保证同一时段单次运行
type RecordRepo struct {
	recordsDir string
	statsDir   string
	topicsDir  string
}

func NewRecordRepo(dataDir string) (*RecordRepo, error) {
	r := &RecordRepo{
		recordsDir: filepath.Join(dataDir, "records"),
		statsDir:   filepath.Join(dataDir, "statistics"),
		topicsDir:  filepath.Join(dataDir, "hot_topics"),
	}

	for _, dir := range []string{r.recordsDir, r.statsDir, r.topicsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "创建数据目录失败")
		}
	}

	return r, nil
}

func (r *RecordRepo) put(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "序列化记录失败: %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "写入记录失败: %s", path)
	}
	return nil
}

// get 读取文档；文件不存在不算错误，返回 ok=false
func (r *RecordRepo) get(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "读取记录失败: %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "解析记录失败: %s", path)
	}
	return true, nil
}

func (r *RecordRepo) postPath(date string, daypart string) string {
	return filepath.Join(r.recordsDir, fmt.Sprintf("%s_%s_post.json", date, daypart))
}

// SavePost 保存帖子文档，同键覆盖
func (r *RecordRepo) SavePost(post *model.Post) error {
	return r.put(r.postPath(post.Meta.Date, post.Meta.Daypart), post)
}

// LoadPost 按 (日期, 时段) 读取帖子
func (r *RecordRepo) LoadPost(date string, daypart string) (*model.Post, bool, error) {
	var post model.Post
	ok, err := r.get(r.postPath(date, daypart), &post)
	if !ok || err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

// LatestPost 返回某日最近写入的帖子文档（webhook 触发路径）
func (r *RecordRepo) LatestPost(date string) (*model.Post, bool, error) {
	matches, err := filepath.Glob(filepath.Join(r.recordsDir, date+"_*_post.json"))
	if err != nil {
		return nil, false, errors.Wrap(err, "查找帖子记录失败")
	}
	if len(matches) == 0 {
		return nil, false, nil
	}

	sort.Slice(matches, func(i, j int) bool {
		fi, errI := os.Stat(matches[i])
		fj, errJ := os.Stat(matches[j])
		if errI != nil || errJ != nil {
			return matches[i] > matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})

	var post model.Post
	ok, err := r.get(matches[0], &post)
	if !ok || err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

// ListPosts 按文件名升序返回所有帖子文档
func (r *RecordRepo) ListPosts() ([]model.Post, error) {
	matches, err := filepath.Glob(filepath.Join(r.recordsDir, "*_post.json"))
	if err != nil {
		return nil, errors.Wrap(err, "查找帖子记录失败")
	}
	sort.Strings(matches)

	posts := make([]model.Post, 0, len(matches))
	for _, path := range matches {
		var post model.Post
		ok, err := r.get(path, &post)
		if err != nil {
			return nil, err
		}
		if ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *RecordRepo) resultsPath(date string) string {
	return filepath.Join(r.recordsDir, date+"_publish_results.json")
}

// SavePublishResults 保存某日发布结果快照
func (r *RecordRepo) SavePublishResults(date string, results map[string]model.PublishResult) error {
	return r.put(r.resultsPath(date), results)
}

func (r *RecordRepo) LoadPublishResults(date string) (map[string]model.PublishResult, bool, error) {
	results := make(map[string]model.PublishResult)
	ok, err := r.get(r.resultsPath(date), &results)
	if !ok || err != nil {
		return nil, false, err
	}
	return results, true, nil
}

// SaveSummary 保存每日汇总
func (r *RecordRepo) SaveSummary(summary *model.DailySummary) error {
	return r.put(filepath.Join(r.recordsDir, summary.Date+"_summary.json"), summary)
}

// ListSummaries 按日期升序返回所有每日汇总
func (r *RecordRepo) ListSummaries() ([]model.DailySummary, error) {
	matches, err := filepath.Glob(filepath.Join(r.recordsDir, "*_summary.json"))
	if err != nil {
		return nil, errors.Wrap(err, "查找汇总记录失败")
	}
	sort.Strings(matches)

	summaries := make([]model.DailySummary, 0, len(matches))
	for _, path := range matches {
		var summary model.DailySummary
		ok, err := r.get(path, &summary)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if summary.Date == "" {
			summary.Date = strings.TrimSuffix(filepath.Base(path), "_summary.json")
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// SaveStatistics 保存全量统计文档
func (r *RecordRepo) SaveStatistics(stats *model.OverallStatistics) error {
	return r.put(filepath.Join(r.statsDir, "overall_statistics.json"), stats)
}

// SaveTopics 保存热点话题审计记录
func (r *RecordRepo) SaveTopics(record *model.TopicRecord) error {
	path := filepath.Join(r.topicsDir, fmt.Sprintf("%s_%s_hot_topics.json", record.Date, record.Daypart))
	return r.put(path, record)
}

// SaveReport 保存文本运营报告
func (r *RecordRepo) SaveReport(date string, report string) error {
	path := filepath.Join(r.recordsDir, "report_"+date+".txt")
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return errors.Wrap(err, "写入报告失败")
	}
	return nil
}
