package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/metrics"
	"travel-journal/pkg/models"
	"travel-journal/pkg/ranking"
	"travel-journal/services/feed/internal/entity"
	"travel-journal/services/feed/internal/repo/persistent"

	"golang.org/x/sync/errgroup"
)

const (
	candidateLimit = 20
	topN           = 5
	rankingWindow  = 7 * 24 * time.Hour
	browseTTL      = 30 * time.Second

	defaultPageSize = 10
	maxPageSize     = 100
)

type FeedUseCase interface {
	HallOfFame(ctx context.Context) []entity.RankedPost
	WeeklyBest(ctx context.Context, excludeIDs []string) []entity.RankedPost
	TopCommunity(ctx context.Context) []entity.RankedPost
	Home(ctx context.Context) *entity.Home
	ListTravelCourses(ctx context.Context, filter entity.BrowseFilter) *entity.PostPage
	ListCommunity(ctx context.Context, page, pageSize int, sort models.PostSort) *entity.PostPage
	Search(ctx context.Context, query string, category models.PostCategory, page, pageSize int) *entity.PostPage
}

type feedUseCase struct {
	feedRepo persistent.FeedRepository
	cache    cache.Cache
	ttl      time.Duration
	metrics  *metrics.Metrics
	logger   *logger.Logger
	now      func() time.Time
}

func NewFeedUseCase(
	feedRepo persistent.FeedRepository,
	feedCache cache.Cache,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		feedRepo: feedRepo,
		cache:    feedCache,
		ttl:      ttl,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// cached serves key from the cache or fills it with load. A failed load is
// returned as ok=false and never stored.
func cached[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, log *logger.Logger, load func() (T, bool)) T {
	var value T
	if c != nil && cache.GetJSON(ctx, c, key, &value) {
		return value
	}
	value, ok := load()
	if ok && c != nil {
		if err := cache.SetJSON(ctx, c, key, value, ttl); err != nil {
			log.Warn("Failed to cache %s: %v", key, err)
		}
	}
	return value
}

func (uc *feedUseCase) degrade(op string, err error) {
	uc.logger.Error("Failed to load %s: %v", op, err)
	uc.metrics.Degraded(op)
}

func rank(posts []entity.FeedPost, n int) []entity.RankedPost {
	top := ranking.Top(posts, n)
	ranked := make([]entity.RankedPost, len(top))
	for i, p := range top {
		likes, saved := p.RankCounters()
		ranked[i] = entity.RankedPost{FeedPost: p, BestScore: ranking.Score(likes, saved)}
	}
	return ranked
}

// HallOfFame scores the 20 most liked travel course posts and keeps the top 5.
func (uc *feedUseCase) HallOfFame(ctx context.Context) []entity.RankedPost {
	return cached(ctx, uc.cache, cache.FeedPrefix+"hall_of_fame", uc.ttl, uc.logger, func() ([]entity.RankedPost, bool) {
		posts, err := uc.feedRepo.TopByLikes(ctx, models.CategoryTravelCourses, candidateLimit)
		if err != nil {
			uc.degrade("hall_of_fame", err)
			return []entity.RankedPost{}, false
		}
		return rank(posts, topN), true
	})
}

// WeeklyBest ranks the 20 newest categorized posts of the past week that are
// not in excludeIDs. The whole ranked list is returned.
func (uc *feedUseCase) WeeklyBest(ctx context.Context, excludeIDs []string) []entity.RankedPost {
	ids := append([]string(nil), excludeIDs...)
	sort.Strings(ids)
	key := cache.FeedPrefix + "weekly_best:" + strings.Join(ids, ",")

	return cached(ctx, uc.cache, key, uc.ttl, uc.logger, func() ([]entity.RankedPost, bool) {
		since := uc.now().Add(-rankingWindow)
		posts, err := uc.feedRepo.RecentAnyCategory(ctx, since, ids, candidateLimit)
		if err != nil {
			uc.degrade("weekly_best", err)
			return []entity.RankedPost{}, false
		}
		return rank(posts, 0), true
	})
}

// TopCommunity ranks every community post of the past week and keeps the top 5.
func (uc *feedUseCase) TopCommunity(ctx context.Context) []entity.RankedPost {
	return cached(ctx, uc.cache, cache.FeedPrefix+"top_community", uc.ttl, uc.logger, func() ([]entity.RankedPost, bool) {
		since := uc.now().Add(-rankingWindow)
		posts, err := uc.feedRepo.RecentByCategory(ctx, models.CategoryCommunity, since)
		if err != nil {
			uc.degrade("top_community", err)
			return []entity.RankedPost{}, false
		}
		return rank(posts, topN), true
	})
}

func (uc *feedUseCase) Home(ctx context.Context) *entity.Home {
	home := &entity.Home{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		home.HallOfFame = uc.HallOfFame(gctx)
		return nil
	})
	g.Go(func() error {
		home.TopCommunity = uc.TopCommunity(gctx)
		return nil
	})
	_ = g.Wait()
	return home
}

func paginate(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}

func emptyPage() *entity.PostPage {
	return &entity.PostPage{Posts: []entity.FeedPost{}}
}

func (uc *feedUseCase) browse(ctx context.Context, op string, q persistent.BrowseQuery) *entity.PostPage {
	key := fmt.Sprintf("%s%s:%s|%s|%s|%s|%d|%d", cache.FeedPrefix, op,
		q.Category,
		strings.Join(q.Cities, ","),
		strings.Join(q.Transportation, ","),
		q.Sort, q.Limit, q.Offset)

	return cached(ctx, uc.cache, key, browseTTL, uc.logger, func() (*entity.PostPage, bool) {
		posts, count, err := uc.feedRepo.Browse(ctx, q)
		if err != nil {
			uc.degrade(op, err)
			return emptyPage(), false
		}
		return &entity.PostPage{Posts: posts, Count: count}, true
	})
}

// ListTravelCourses lists travel course posts overlapping the city and
// transportation filters. With a transportation filter, posts that also use
// an unselected transport type are dropped from the page; count is the
// unfiltered total.
func (uc *feedUseCase) ListTravelCourses(ctx context.Context, filter entity.BrowseFilter) *entity.PostPage {
	limit, offset := paginate(filter.Page, filter.PageSize)
	page := uc.browse(ctx, "travel", persistent.BrowseQuery{
		Category:       models.CategoryTravelCourses,
		Cities:         filter.Cities,
		Transportation: filter.Transportation,
		Sort:           filter.Sort,
		Limit:          limit,
		Offset:         offset,
	})
	if len(filter.Transportation) == 0 {
		return page
	}

	selected := make(map[string]struct{}, len(filter.Transportation))
	for _, t := range filter.Transportation {
		selected[t] = struct{}{}
	}
	kept := make([]entity.FeedPost, 0, len(page.Posts))
	for _, p := range page.Posts {
		if onlySelected(p.Transportation, selected) {
			kept = append(kept, p)
		}
	}
	return &entity.PostPage{Posts: kept, Count: page.Count}
}

func onlySelected(used []string, selected map[string]struct{}) bool {
	for _, t := range used {
		if _, ok := selected[t]; !ok {
			return false
		}
	}
	return true
}

func (uc *feedUseCase) ListCommunity(ctx context.Context, page, pageSize int, sort models.PostSort) *entity.PostPage {
	limit, offset := paginate(page, pageSize)
	return uc.browse(ctx, "community", persistent.BrowseQuery{
		Category: models.CategoryCommunity,
		Sort:     sort,
		Limit:    limit,
		Offset:   offset,
	})
}

// Search matches query against titles and contents. Search results are not cached.
func (uc *feedUseCase) Search(ctx context.Context, query string, category models.PostCategory, page, pageSize int) *entity.PostPage {
	query = strings.TrimSpace(query)
	if query == "" {
		return emptyPage()
	}
	limit, offset := paginate(page, pageSize)
	posts, count, err := uc.feedRepo.Search(ctx, query, category, limit, offset)
	if err != nil {
		uc.degrade("search", err)
		return emptyPage()
	}
	return &entity.PostPage{Posts: posts, Count: count}
}
