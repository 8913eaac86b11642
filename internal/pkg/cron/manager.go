package cron

import (
	"PetOps/internal/api/config"
	"PetOps/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	morningJob *job.GenerateJob
	eveningJob *job.GenerateJob
	reportJob  *job.ReportJob
}

func NewCronManager(morningJob *job.GenerateJob, eveningJob *job.GenerateJob, reportJob *job.ReportJob) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		morningJob: morningJob,
		eveningJob: eveningJob,
		reportJob:  reportJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	schedule := config.Cfg.Schedule
	if _, err := s.engine.AddJob(schedule.Morning, s.morningJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(schedule.Evening, s.eveningJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(schedule.Report, s.reportJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
