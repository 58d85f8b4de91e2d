package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/platform"
	"Pulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// AdapterProvider 按平台标识提供适配器
type AdapterProvider interface {
	GetAdapter(name string) (platform.Adapter, error)
}

type StatsService interface {
	GetPlatformStats(ctx context.Context, userID uint64, platformTag string, windowDays int) (*model.PlatformStats, error)
	GetAllPlatformStats(ctx context.Context, userID uint64, windowDays int) ([]*model.PlatformStats, error)
	GetPosts(ctx context.Context, userID uint64, platformTag string, windowDays int, page int, limit int) (*dto.PostsPageDTO, error)
	SnapshotDailyCounters(ctx context.Context) error
}

type statsServiceImpl struct {
	apiKeyRepo repository.APIKeyRepo
	statsRepo  repository.StatsRepo
	adapters   AdapterProvider
	freshness  time.Duration
	sf         singleflight.Group
}

func NewStatsService(
	apiKeyRepo repository.APIKeyRepo,
	statsRepo repository.StatsRepo,
	adapters AdapterProvider,
	freshnessSeconds int,
) StatsService {
	freshness := time.Duration(freshnessSeconds) * time.Second
	if freshness <= 0 {
		freshness = 5 * time.Minute
	}
	return &statsServiceImpl{
		apiKeyRepo: apiKeyRepo,
		statsRepo:  statsRepo,
		adapters:   adapters,
		freshness:  freshness,
	}
}

// GetPlatformStats 按 (user, platform, window) 解析统计条目。
// 无凭据返回缓存或演示数据；有凭据走新鲜窗口 + singleflight 的实时拉取，
// 拉取失败降级为带错误注解的缓存快照。
func (s *statsServiceImpl) GetPlatformStats(ctx context.Context, userID uint64, platformTag string, windowDays int) (*model.PlatformStats, error) {
	if !consts.IsSupportedPlatform(platformTag) {
		return nil, ErrUnsupportedPlatform
	}
	if windowDays <= 0 {
		return nil, ErrParamInvalid
	}

	keys, err := s.apiKeyRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}

	var credential *string
	if keys != nil {
		credential = keys.KeyFor(platformTag)
	}
	if credential == nil || *credential == "" {
		return s.readCached(ctx, userID, platformTag, windowDays)
	}

	if fresh := s.readFresh(ctx, userID, platformTag, windowDays); fresh != nil {
		return fresh, nil
	}

	// 并发读共享一次在途拉取
	sfKey := fmt.Sprintf("%d:%s:%d", userID, platformTag, windowDays)
	v, err, _ := s.sf.Do(sfKey, func() (interface{}, error) {
		return s.fetchLive(ctx, userID, platformTag, *credential, windowDays)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.PlatformStats), nil
}

// GetAllPlatformStats 固定平台集合的聚合读取。单个平台失败只影响该平台
// 条目，绝不让整个聚合失败。
func (s *statsServiceImpl) GetAllPlatformStats(ctx context.Context, userID uint64, windowDays int) ([]*model.PlatformStats, error) {
	results := make([]*model.PlatformStats, len(consts.Platforms))

	g, gCtx := errgroup.WithContext(ctx)
	for i, platformTag := range consts.Platforms {
		g.Go(func() error {
			stats, err := s.GetPlatformStats(gCtx, userID, platformTag, windowDays)
			if err != nil {
				log.WarnContext(gCtx, "platform stats resolution failed, omitting from aggregate",
					"platform", platformTag, "err", err)
				return nil
			}
			results[i] = stats
			return nil
		})
	}
	_ = g.Wait()

	collected := make([]*model.PlatformStats, 0, len(results))
	for _, stats := range results {
		if stats != nil {
			collected = append(collected, stats)
		}
	}
	return collected, nil
}

// GetPosts 解析指定平台（或全部平台）的统计，扁平化帖子列表后按发布时间
// 倒序稳定排序，再做 offset/limit 切片。
func (s *statsServiceImpl) GetPosts(ctx context.Context, userID uint64, platformTag string, windowDays int, page int, limit int) (*dto.PostsPageDTO, error) {
	if page <= 0 || limit <= 0 {
		return nil, ErrParamInvalid
	}

	var posts []*model.Post
	if platformTag == "" || platformTag == consts.PlatformAll {
		allStats, err := s.GetAllPlatformStats(ctx, userID, windowDays)
		if err != nil {
			return nil, err
		}
		for _, stats := range allStats {
			posts = append(posts, stats.Posts...)
		}
	} else {
		stats, err := s.GetPlatformStats(ctx, userID, platformTag, windowDays)
		if err != nil {
			return nil, err
		}
		if stats == nil {
			return nil, ErrStatsNotFound
		}
		posts = append(posts, stats.Posts...)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].DatePosted.After(posts[j].DatePosted)
	})

	total := len(posts)
	totalPages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &dto.PostsPageDTO{
		Posts: posts[offset:end],
		Pagination: &dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// SnapshotDailyCounters 把当前缓存计数落为当日快照，供下一周期环比计算
func (s *statsServiceImpl) SnapshotDailyCounters(ctx context.Context) error {
	caches, err := s.statsRepo.ListAllCache(ctx)
	if err != nil {
		return err
	}

	today := getMidnight(time.Now())
	for _, cache := range caches {
		snapshot := &model.StatsSnapshot{
			UserID:       cache.UserID,
			Platform:     cache.Platform,
			WindowDays:   cache.WindowDays,
			SnapshotDate: today,
			Followers:    cache.Followers,
			Views:        cache.Views,
			Engagement:   cache.Engagement,
		}
		if err := s.statsRepo.UpsertSnapshot(ctx, snapshot); err != nil {
			log.ErrorContext(ctx, "snapshot upsert failed",
				"user_id", cache.UserID, "platform", cache.Platform, "err", err)
		}
	}
	return nil
}

// readCached 无凭据路径：命中缓存原样返回，否则回落到演示数据
func (s *statsServiceImpl) readCached(ctx context.Context, userID uint64, platformTag string, windowDays int) (*model.PlatformStats, error) {
	cache, err := s.statsRepo.GetCache(ctx, userID, platformTag, windowDays)
	if err != nil {
		return nil, err
	}
	if cache == nil {
		return SampleStats(platformTag), nil
	}

	stats, err := s.cacheToStats(cache)
	if err != nil {
		return nil, err
	}
	stats.Connected = false
	return stats, nil
}

// fetchLive 实时拉取；成功覆盖缓存并刷新新鲜窗口，失败降级
func (s *statsServiceImpl) fetchLive(ctx context.Context, userID uint64, platformTag string, credential string, windowDays int) (*model.PlatformStats, error) {
	adapter, err := s.adapters.GetAdapter(platformTag)
	if err != nil {
		return nil, ErrUnsupportedPlatform
	}

	stats, err := adapter.FetchStats(ctx, userID, credential, windowDays)
	if err != nil {
		log.WarnContext(ctx, "live fetch failed, degrading to cached entry",
			"platform", platformTag, "user_id", userID, "err", err)
		return s.degrade(ctx, userID, platformTag, windowDays, err)
	}

	s.applyGrowth(ctx, userID, platformTag, windowDays, stats)
	stats.Connected = true
	stats.Source = model.SourceLive

	if err := s.persistCache(ctx, userID, windowDays, stats); err != nil {
		log.ErrorContext(ctx, "stats cache persist failed",
			"platform", platformTag, "user_id", userID, "err", err)
	}
	s.writeFresh(ctx, userID, platformTag, windowDays, stats)

	return stats, nil
}

// degrade 读取既有缓存（或演示数据），只附加错误注解与新时间戳，
// 不改动底层计数
func (s *statsServiceImpl) degrade(ctx context.Context, userID uint64, platformTag string, windowDays int, fetchErr error) (*model.PlatformStats, error) {
	cache, err := s.statsRepo.GetCache(ctx, userID, platformTag, windowDays)
	if err != nil {
		return nil, err
	}

	var stats *model.PlatformStats
	if cache != nil {
		stats, err = s.cacheToStats(cache)
		if err != nil {
			return nil, err
		}
	} else {
		stats = SampleStats(platformTag)
	}

	stats.Connected = true
	stats.Source = model.SourceDegraded
	stats.IsError = true
	stats.ErrorMsg = fetchErr.Error()
	stats.LastUpdated = time.Now()
	return stats, nil
}

// applyGrowth 用上一周期快照计算环比增长，并落下当日快照。
// 无历史快照视为零增长。
func (s *statsServiceImpl) applyGrowth(ctx context.Context, userID uint64, platformTag string, windowDays int, stats *model.PlatformStats) {
	today := getMidnight(time.Now())

	previous, err := s.statsRepo.GetLatestSnapshotBefore(ctx, userID, platformTag, windowDays, today)
	if err != nil {
		log.WarnContext(ctx, "previous snapshot lookup failed, reporting zero growth",
			"platform", platformTag, "user_id", userID, "err", err)
		previous = nil
	}

	if previous != nil {
		stats.FollowerGrowth = pctChange(stats.Followers, previous.Followers)
		stats.ViewGrowth = pctChange(stats.Views, previous.Views)
		stats.EngagementGrowth = pctChange(stats.Engagement, previous.Engagement)
	} else {
		stats.FollowerGrowth = 0
		stats.ViewGrowth = 0
		stats.EngagementGrowth = 0
	}

	snapshot := &model.StatsSnapshot{
		UserID:       userID,
		Platform:     platformTag,
		WindowDays:   windowDays,
		SnapshotDate: today,
		Followers:    stats.Followers,
		Views:        stats.Views,
		Engagement:   stats.Engagement,
	}
	if err := s.statsRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		log.WarnContext(ctx, "snapshot upsert failed",
			"platform", platformTag, "user_id", userID, "err", err)
	}
}

func (s *statsServiceImpl) persistCache(ctx context.Context, userID uint64, windowDays int, stats *model.PlatformStats) error {
	postsJSON, err := json.Marshal(stats.Posts)
	if err != nil {
		return err
	}

	cache := &model.StatsCache{
		UserID:           userID,
		Platform:         stats.Platform,
		WindowDays:       windowDays,
		Followers:        stats.Followers,
		FollowerGrowth:   stats.FollowerGrowth,
		Views:            stats.Views,
		ViewGrowth:       stats.ViewGrowth,
		Engagement:       stats.Engagement,
		EngagementGrowth: stats.EngagementGrowth,
		PostsJSON:        string(postsJSON),
		Source:           model.SourceLive,
		LastUpdated:      stats.LastUpdated,
	}
	return s.statsRepo.UpsertCache(ctx, cache)
}

func (s *statsServiceImpl) cacheToStats(cache *model.StatsCache) (*model.PlatformStats, error) {
	posts := make([]*model.Post, 0)
	if cache.PostsJSON != "" {
		if err := json.Unmarshal([]byte(cache.PostsJSON), &posts); err != nil {
			return nil, err
		}
	}

	return &model.PlatformStats{
		Platform:         cache.Platform,
		Followers:        cache.Followers,
		FollowerGrowth:   cache.FollowerGrowth,
		Views:            cache.Views,
		ViewGrowth:       cache.ViewGrowth,
		Engagement:       cache.Engagement,
		EngagementGrowth: cache.EngagementGrowth,
		Posts:            posts,
		LastUpdated:      cache.LastUpdated,
		Source:           cache.Source,
	}, nil
}

// readFresh 新鲜窗口内直接返回 Redis 中的副本，避免重复出站调用
func (s *statsServiceImpl) readFresh(ctx context.Context, userID uint64, platformTag string, windowDays int) *model.PlatformStats {
	if redis.GetRdbClient() == nil {
		return nil
	}

	key := freshKey(userID, platformTag, windowDays)
	raw, err := redis.GetValue(ctx, key)
	if err != nil || raw == "" {
		return nil
	}

	stats := &model.PlatformStats{}
	if err := json.Unmarshal([]byte(raw), stats); err != nil {
		return nil
	}
	stats.Connected = true
	return stats
}

func (s *statsServiceImpl) writeFresh(ctx context.Context, userID uint64, platformTag string, windowDays int, stats *model.PlatformStats) {
	if redis.GetRdbClient() == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = redis.SetWithExpiration(ctx, freshKey(userID, platformTag, windowDays), string(raw), s.freshness)
}

func freshKey(userID uint64, platformTag string, windowDays int) string {
	return fmt.Sprintf("%s%d:%s:%d", consts.StatsFreshKey, userID, platformTag, windowDays)
}

func pctChange(current int64, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
