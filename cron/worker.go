package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"sellerpulse/config"
	sellerRepo "sellerpulse/database/repository/seller"
	"sellerpulse/models"
	statsSvc "sellerpulse/services/stats"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeStatsWarm = "stats:warm"

// InitStatsWarmWorker runs the async worker in background. It keeps the
// current pay week's stats warm in the cache so dashboard loads hit Redis
// instead of recomputing against Mongo.
func InitStatsWarmWorker(stats statsSvc.StatsService, sellers sellerRepo.SellerRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsWarmDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStatsWarm, handleStatsWarmTask(stats))

	go monitorRedisConnection()
	go enqueueWarmTasks(sellers, redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[StatsWarmWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatsWarmWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatsWarmWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// enqueueWarmTasks schedules one warm task per seller plus the merged view
// on every tick. Seller enumeration happens at tick time so new accounts
// get picked up without a restart.
func enqueueWarmTasks(sellers sellerRepo.SellerRepository, redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := config.AppConfig.StatsWarmInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		selectors := []string{statsSvc.SelectorAll}
		all, err := sellers.GetAll()
		if err != nil {
			log.Printf("[StatsWarmWorker] Failed to enumerate sellers: %v", err)
		} else {
			for _, s := range all {
				selectors = append(selectors, s.ID)
			}
		}

		for _, selector := range selectors {
			payload, err := json.Marshal(models.StatsWarmPayload{Selector: selector})
			if err != nil {
				continue
			}
			if _, err := client.Enqueue(asynq.NewTask(TypeStatsWarm, payload)); err != nil {
				log.Printf("[StatsWarmWorker] Failed to enqueue warm task for %s: %v", selector, err)
			}
		}
	}
}

func handleStatsWarmTask(stats statsSvc.StatsService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.StatsWarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[StatsWarmHandler] Invalid payload: %v", err)
			return err
		}

		// Computing through the service writes the result into the cache.
		if _, err := stats.WeeklyStats(ctx, p.Selector, time.Now()); err != nil {
			log.Printf("[StatsWarmHandler] Failed to warm stats for %s: %v", p.Selector, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsWarmDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[StatsWarmWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
