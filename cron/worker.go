package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roomfinder/apiclient"
	"roomfinder/config"
	"roomfinder/handlers"
	"roomfinder/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeStatsRefresh = "stats:refresh"

// InitStatsWorker runs the background stats-refresh worker. On a schedule
// it re-pulls platform totals through the API client and caches a snapshot
// in Redis for the public /api/stats endpoint, so the overview never has to
// block on the upstream for top-line numbers.
func InitStatsWorker(api *apiclient.Client, cache *redis.Client) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStatsRefresh, handleStatsRefresh(api, cache))

	go func() {
		log.Println("[StatsWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[StatsWorker] worker stopped: %v", err)
		}
	}()

	interval := config.AppConfig.StatsRefreshMinutes
	if interval < 1 {
		interval = 15
	}
	scheduler := asynq.NewScheduler(redisOpts, nil)
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeStatsRefresh, nil)); err != nil {
		log.Printf("[StatsWorker] failed to register schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[StatsWorker] scheduler stopped: %v", err)
		}
	}()
}

// handleStatsRefresh pulls platform totals and writes the snapshot. The
// property search degrades to an empty result on transport failure, so a
// flaky upstream leaves the previous snapshot in place (write skipped when
// the result carries no data).
func handleStatsRefresh(api *apiclient.Client, cache *redis.Client) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		res, err := api.SearchProperties(ctx, "", "", 1, 1)
		if err != nil {
			return err
		}
		if res.Pagination.TotalItems == 0 {
			return nil
		}

		snapshot := models.DashboardStats{
			TotalProperties: res.Pagination.TotalItems,
		}
		raw, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}

		interval := config.AppConfig.StatsRefreshMinutes
		if interval < 1 {
			interval = 15
		}
		ttl := time.Duration(3*interval) * time.Minute
		return cache.Set(ctx, handlers.PlatformStatsKey, raw, ttl).Err()
	}
}
