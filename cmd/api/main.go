package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"Hive_Community/internal/config"
	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/repository/redis"
	"Hive_Community/internal/router"
	"Hive_Community/internal/service"
	"Hive_Community/internal/storage"
)

func main() {
	cfg := config.Load()
	pkg.ConfigureSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Topic{},
		&model.Post{},
		&model.Notification{},
		&model.NotificationOutbox{},
		&model.GalleryMedia{},
		&model.Classroom{},
	); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 对象存储
	store, err := storage.NewMinioStore(storage.MinioConfig{
		Endpoint:      cfg.MinioEndpoint,
		AccessKey:     cfg.MinioAccessKey,
		SecretKey:     cfg.MinioSecretKey,
		UseSSL:        cfg.MinioUseSSL,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	if err != nil {
		panic(err)
	}
	if err := store.EnsureBuckets(ctx, storage.BucketAvatars, storage.BucketPosts, storage.BucketClassrooms); err != nil {
		panic(err)
	}

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	// 通知 outbox → Kafka；没配 broker 时退化为日志 sender
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	go service.NewOutboxRelayer(sender).Run(ctx)
	go service.NewMemberCountReconciler().Run(ctx)

	// Gin
	r := router.InitRouter(emailCfg, store)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
