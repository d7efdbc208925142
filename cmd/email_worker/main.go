package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/config"
	"github.com/accadex/accadex/pkg/helpers"
	"github.com/accadex/accadex/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue, 16)
	if err != nil {
		logger.WithError(err).Fatal("rabbitmq connect")
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries()
	if err != nil {
		logger.WithError(err).Fatal("consume")
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			settle(ctx, logger, mg, msg)
		}
	}()

	helpers.LogInfo(logger, "email worker listening", logrus.Fields{"queue": cfg.RabbitMQEmailQueue})
	select {
	case <-stop:
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("shutting down...")
	cancel()
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func settle(ctx context.Context, logger *logrus.Logger, s mailer.Sender, msg amqp.Delivery) {
	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	outcome, err := mailer.Process(c, s, msg.Body)
	entry := logger.WithField("delivery_tag", msg.DeliveryTag)
	switch outcome {
	case mailer.Ack:
		entry.Debug("email sent")
		_ = msg.Ack(false)
	case mailer.Drop:
		entry.WithError(err).Error("dropping email job")
		_ = msg.Nack(false, false)
	case mailer.Requeue:
		entry.WithError(err).Warn("send failed, requeueing")
		_ = msg.Nack(false, true)
	}
}
