package service

import (
	"context"
	"log"
	"time"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.NotificationOutbox) error

// OutboxRelayer drains pending notification events to Kafka. Rows the sender
// rejects are marked failed with a retry count and picked up by operations.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run outbox启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender keys messages by recipient so one user's events stay ordered
// within a partition.
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.NotificationOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.Recipient), []byte(ob.Payload))
	}
}

// LogSender 是没配 Kafka broker 时的兜底 sender，只打日志
func LogSender(ctx context.Context, ob *model.NotificationOutbox) error {
	log.Printf("OUTBOX SEND type=%s recipient=%d payload=%s", ob.EventType, ob.Recipient, ob.Payload)
	return nil
}
