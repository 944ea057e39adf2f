//go:build ignore
// +build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/repository/cache"
)

// Публикует DataUpdatedEvent вручную, минуя наблюдатель за файлами, и проверяет,
// что cache-refresh воркер удалил страницу из кеша.
//
//	go run scripts/test_publish.go -locale nl-be
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	locale := flag.String("locale", "", "Locale code (empty: all locales)")
	path := flag.String("path", "manual", "Changed path reported in the event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.DataUpdatedEvent{
		EventID:   uuid.New(),
		Locale:    *locale,
		Path:      *path,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := sonic.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamDataUpdated,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamDataUpdated)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.EventID)
	fmt.Printf("   Locale: %q\n", event.Locale)

	keys := []string{}
	for _, l := range domain.Locales() {
		if event.Locale == "" || l.Code == event.Locale {
			keys = append(keys, cache.PageKey(l.Code))
		}
	}

	// Ожидание сброса кеша
	fmt.Printf("\nWaiting for %v to be dropped...\n", keys)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: page cache still present (is cmd/worker running with WORKER_REFRESH_ENABLED?)")
			return
		case <-ticker.C:
			n, err := client.Exists(ctx, keys...).Result()
			if err != nil {
				continue
			}
			if n == 0 {
				fmt.Println("Page cache dropped")
				return
			}
		}
	}
}
