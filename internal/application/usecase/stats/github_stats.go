package stats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GaluhWikri/Portofolio-Galuh/adapters/github"
	"github.com/GaluhWikri/Portofolio-Galuh/pkg/logger"
)

const (
	statsCacheKey = "github:stats"
	statsCacheTTL = time.Hour
)

// GitHubStatsUseCase serves the landing-page stats block, fronting the live
// GitHub lookup with a Redis cache. Cache trouble is logged and never
// surfaced; the lookup itself decides what fails the request.
type GitHubStatsUseCase struct {
	client *github.Client
	cache  *redis.Client
	logger logger.Logger
}

func NewGitHubStatsUseCase(client *github.Client, cache *redis.Client, log logger.Logger) *GitHubStatsUseCase {
	return &GitHubStatsUseCase{client: client, cache: cache, logger: log}
}

type GetStatsOutput struct {
	Stats *github.Stats
}

func (uc *GitHubStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	if cached := uc.fromCache(ctx); cached != nil {
		return &GetStatsOutput{Stats: cached}, nil
	}

	stats, err := uc.client.FetchStats(ctx)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, stats)
	return &GetStatsOutput{Stats: stats}, nil
}

func (uc *GitHubStatsUseCase) fromCache(ctx context.Context) *github.Stats {
	if uc.cache == nil {
		return nil
	}
	raw, err := uc.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("failed to read GitHub stats cache", zap.Error(err))
		}
		return nil
	}
	stats := &github.Stats{}
	if err := json.Unmarshal(raw, stats); err != nil {
		uc.logger.Warn("corrupt GitHub stats cache entry", zap.Error(err))
		return nil
	}
	return stats
}

func (uc *GitHubStatsUseCase) toCache(ctx context.Context, stats *github.Stats) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		uc.logger.Warn("failed to write GitHub stats cache", zap.Error(err))
	}
}
