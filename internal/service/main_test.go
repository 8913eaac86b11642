package service

import (
	"PetOps/internal/api/config"
	"PetOps/internal/repository"
	"testing"
)

// setupTestConfig 为测试注入临时目录配置，返回对应的记录仓库
func setupTestConfig(t *testing.T) *repository.RecordRepo {
	t.Helper()

	dataDir := t.TempDir()
	config.Cfg = &config.Config{
		Xiaohongshu: config.XiaohongshuConfig{
			Enabled:        true,
			TitleMaxLength: 20,
			TimeoutSeconds: 300,
		},
		Wechat: config.WechatConfig{
			Enabled:        false,
			TitleMaxLength: 64,
		},
		Data: config.DataConfig{
			Dir:        dataDir,
			ContentDir: t.TempDir(),
		},
	}

	repo, err := repository.NewRecordRepo(dataDir)
	if err != nil {
		t.Fatalf("create record repo: %v", err)
	}
	return repo
}

func testDataDir() string {
	return config.Cfg.Data.Dir
}
