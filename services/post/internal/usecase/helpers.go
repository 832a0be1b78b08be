package usecase

import (
	"context"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// paginate turns a 1-based page into limit and offset.
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

func invalidateFeed(ctx context.Context, c cache.Cache, log *logger.Logger) {
	if c == nil {
		return
	}
	if err := c.InvalidatePrefix(ctx, cache.FeedPrefix); err != nil {
		log.Warn("Failed to invalidate feed cache: %v", err)
	}
}
