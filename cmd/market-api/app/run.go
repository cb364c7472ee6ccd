package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/ji-nious/mosi-project-sub001/configs"
	"github.com/ji-nious/mosi-project-sub001/internal/adapter/cache"
	apphttp "github.com/ji-nious/mosi-project-sub001/internal/adapter/http"
	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	"github.com/ji-nious/mosi-project-sub001/internal/adapter/kafka"
	"github.com/ji-nious/mosi-project-sub001/internal/adapter/queue"
	"github.com/ji-nious/mosi-project-sub001/internal/adapter/repo"
	"github.com/ji-nious/mosi-project-sub001/internal/logging"
	"github.com/ji-nious/mosi-project-sub001/internal/security"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, "./logs/app.log")
	log := logging.New("app")

	// database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	err = db.PingContext(ctx)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	log.Info("market-api: starting up")

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// rabbitmq
	conn, err := amqp.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	// repos + stores
	orderRepo := repo.NewMySQLOrderRepo(db)
	cartRepo := repo.NewMySQLCartRepo(db)
	memberRepo := repo.NewMySQLMemberRepo(db)
	reviewRepo := repo.NewMySQLReviewRepo(db)
	boardRepo := repo.NewMySQLBoardRepo(db)
	idem := cache.NewRedisIdempotencyStore(rdb, cfg.Idempotency.TTL)
	statusCache := cache.NewRedisCache(rdb, cfg.Cache.StatusTTL)

	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}

	// use cases
	placeUC := usecase.NewPlaceOrder(orderRepo, cartRepo, idem, statusCache, producer)
	cancelUC := usecase.NewCancelOrder(orderRepo, statusCache)
	queryUC := usecase.NewOrderQuery(orderRepo, cartRepo, memberRepo, statusCache)
	statusUC := usecase.NewOrderStatus(orderRepo, statusCache)
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	memberUC := usecase.NewMemberService(memberRepo, hasher)
	reviewUC := usecase.NewReviewService(reviewRepo, memberRepo)
	boardUC := usecase.NewBoardService(boardRepo)

	// consumers
	setupQueue(ch, statusUC)
	setupKafkaListener(cfg, statusUC)

	// http
	tokens := security.NewTokenIssuer(
		cfg.Security.JWTSecret,
		cfg.Security.Issuer,
		cfg.Security.Audience,
		cfg.Security.TTL,
	)
	authz := middleware.NewAuthz(tokens)
	router := apphttp.NewRouter(apphttp.Handlers{
		Member: apphttp.NewMemberHandler(memberUC, tokens),
		Order:  apphttp.NewOrderHandler(placeUC, cancelUC, queryUC),
		Review: apphttp.NewReviewHandler(reviewUC),
		Board:  apphttp.NewBoardHandler(boardUC),
	}, authz, logging.New("http"))

	cleanup := func() {
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp.Channel, statusUC *usecase.OrderStatus) {
	h := queue.NewOrderPlacedHandler(statusUC)

	router := queue.NewRouter(ch, logging.New("rabbit"), queue.WithPrefetch(50))
	router.Register(queue.PlacedQueueName(), queue.JSONHandler[usecase.PlacedMsg]{HandleFunc: h.HandlePlaced})

	if err := router.Start(); err != nil {
		panic(err)
	}
}

func setupKafkaListener(cfg configs.Config, statusUC *usecase.OrderStatus) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup)
	if err != nil {
		panic(err)
	}

	h := kafka.NewPaymentStatusHandler(statusUC)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.PaymentTopic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil && err != context.Canceled {
			logging.New("kafka").Error("consumer stopped", "err", err)
		}
	}()
}
