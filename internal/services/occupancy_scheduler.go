package services

import (
	"fmt"
	"time"

	"rentadmin/pkg/logger"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OccupancyScheduler 在住状态调度器：
// 每天凌晨把已过退租日期的入住关联置为到期并重算单元状态，
// 顺带清理已过期的黑名单条目
type OccupancyScheduler struct {
	db         *gorm.DB
	tenantUnit *TenantUnitService
	blacklist  *BlacklistService
	cron       *cron.Cron
	running    bool
}

// NewOccupancyScheduler 创建在住状态调度器
func NewOccupancyScheduler(db *gorm.DB) *OccupancyScheduler {
	return &OccupancyScheduler{
		db:         db,
		tenantUnit: NewTenantUnitService(db),
		blacklist:  NewBlacklistService(db),
		cron:       cron.New(),
	}
}

// Start 启动调度器
func (s *OccupancyScheduler) Start() error {
	if s.running {
		return fmt.Errorf("调度器已经在运行")
	}

	if _, err := s.cron.AddFunc("0 2 * * *", s.runSweep); err != nil {
		return fmt.Errorf("注册在住状态巡检任务失败: %v", err)
	}

	s.cron.Start()
	s.running = true
	logger.GetLogger().Info("在住状态调度器已启动")
	return nil
}

// Stop 停止调度器
func (s *OccupancyScheduler) Stop() {
	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	logger.GetLogger().Info("在住状态调度器已停止")
}

// runSweep 执行一轮巡检，单项失败只记日志不中断
func (s *OccupancyScheduler) runSweep() {
	appLogger := logger.GetLogger()
	now := time.Now()

	expired, err := s.tenantUnit.ExpireOverdue(now)
	if err != nil {
		appLogger.Errorf("入住到期巡检失败: %v", err)
	} else if expired > 0 {
		appLogger.Infof("入住到期巡检完成，%d 条关联已置为到期", expired)
	}

	purged, err := s.blacklist.PurgeExpired(now)
	if err != nil {
		appLogger.Errorf("清理过期黑名单失败: %v", err)
	} else if purged > 0 {
		appLogger.Infof("已清理 %d 条过期黑名单条目", purged)
	}
}
