package app

import (
	"os"
	"strconv"
	"time"

	"ems-console/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and mounts every module on the router.
// KAFKA_BROKERS is optional; without it admin-activity events are dropped.
func BuildApp(router *gin.Engine) error {
	redisClient, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	upstreamClient := connection.NewUpstreamClient(15 * time.Second)

	var kafkaWriter *writerHolder
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers != "" {
		kafkaWriter = &writerHolder{w: connection.NewKafkaWriter(brokers)}
		zap.L().Info("kafka writer configured", zap.String("brokers", brokers))
	}

	return registerModules(router, registryDeps{
		rdb:          redisClient,
		upstream:     upstreamClient,
		kafka:        kafkaWriter,
		upstreamBase: envOr("UPSTREAM_API_BASE", "http://localhost:5000"),
		sessionTTL:   sessionTTLFromEnv(),
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sessionTTLFromEnv() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || hours <= 0 {
		return 0 // service falls back to its default
	}
	return time.Duration(hours) * time.Hour
}
