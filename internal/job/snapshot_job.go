package job

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/logger"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// SnapshotJob 每日把统计缓存计数落为快照，供环比增长计算取上一周期基线
type SnapshotJob struct {
	statsSvc service.StatsService
}

func NewSnapshotJob(statsSvc service.StatsService) *SnapshotJob {
	return &SnapshotJob{statsSvc: statsSvc}
}

func (s *SnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时同一天只允许一个实例落快照
	if client := redis.GetRdbClient(); client != nil {
		lockValue := uuid.NewString()
		acquired, err := redis.TryLock(ctx, consts.SnapshotLock, lockValue, 10*time.Minute, 1)
		if err != nil {
			log.ErrorContext(ctx, "snapshot lock acquire error", "err", err)
			return
		}
		if !acquired {
			log.InfoContext(ctx, "snapshot lock held elsewhere, skipping run")
			return
		}
		defer redis.UnLock(ctx, consts.SnapshotLock, lockValue)
	}

	if err := s.statsSvc.SnapshotDailyCounters(ctx); err != nil {
		log.ErrorContext(ctx, "daily stats snapshot error", "err", err)
		return
	}

	log.InfoContext(ctx, "daily stats snapshot success")
}
