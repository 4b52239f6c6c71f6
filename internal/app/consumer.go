package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ems-console/internal/bootstrap"
	"ems-console/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

// RunConsumer tails the admin-activity topic into the audit log until
// interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	reader := consumer.NewAdminActivityReader(brokers, "ems-console-audit")
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	auditLogger := bootstrap.NewStdoutAuditLogger()
	go consumer.ConsumeAdminActivity(ctx, reader, auditLogger, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
