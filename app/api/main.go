package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/lelongx/goapi/base/ctx"
	"github.com/lelongx/goapi/base/database/mongoclient"
	"github.com/lelongx/goapi/base/database/redisclient"
	"github.com/lelongx/goapi/base/log"
	"github.com/lelongx/goapi/base/metrics"
	bValidator "github.com/lelongx/goapi/base/validator"
	"github.com/lelongx/goapi/domain/risk"
	mmiddleware "github.com/lelongx/goapi/middleware"
	"github.com/lelongx/goapi/service/notifier"
	"github.com/lelongx/goapi/service/query"
	"github.com/lelongx/goapi/service/redis"
	"github.com/lelongx/goapi/service/registry"
	auction_delivery "github.com/lelongx/goapi/stores/auction/delivery/http"
	auction_repository "github.com/lelongx/goapi/stores/auction/repository"
	auction_usecase "github.com/lelongx/goapi/stores/auction/usecase"
	audit_delivery "github.com/lelongx/goapi/stores/audit/delivery/http"
	audit_repository "github.com/lelongx/goapi/stores/audit/repository"
	audit_usecase "github.com/lelongx/goapi/stores/audit/usecase"
	bidder_repository "github.com/lelongx/goapi/stores/bidder/repository"
	bidder_usecase "github.com/lelongx/goapi/stores/bidder/usecase"
	compliance_usecase "github.com/lelongx/goapi/stores/compliance/usecase"
	hc_delivery "github.com/lelongx/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/lelongx/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/lelongx/goapi/stores/healthcheck/usecase"
	property_delivery "github.com/lelongx/goapi/stores/property/delivery/http"
	property_repository "github.com/lelongx/goapi/stores/property/repository"
	property_usecase "github.com/lelongx/goapi/stores/property/usecase"
	risk_repository "github.com/lelongx/goapi/stores/risk/repository"
	risk_usecase "github.com/lelongx/goapi/stores/risk/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init land registry client
	registryTimeout := viper.GetDuration("registry.timeout")
	registryClient := registry.NewClient(&registry.ClientCfg{
		BaseUrl:    viper.GetString("registry.baseUrl"),
		HttpClient: http.Client{},
		Timeout:    registryTimeout,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	propertyRepo := property_repository.New(q)
	bidderRepo := bidder_repository.New(q, redisCache)
	auditStore := audit_repository.New(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	bidRepo := auction_repository.NewBidRepo(q)
	reportRepo := risk_repository.NewReportRepo(q)

	hc := hc_usecase.New(hcRepo)
	auditSink := audit_usecase.New(&audit_usecase.SinkCfg{
		Store:    auditStore,
		PoolSize: viper.GetInt("audit.poolSize"),
	})
	auditTrail := audit_usecase.NewTrail(&audit_usecase.TrailCfg{
		Store: auditStore,
	})
	checker := compliance_usecase.New(&compliance_usecase.CheckerCfg{
		Predicates: compliance_usecase.DefaultPredicates(registryClient),
	})
	verifier := bidder_usecase.New(&bidder_usecase.VerifierCfg{
		Repo:         bidderRepo,
		AmlThreshold: viper.GetString("aml.threshold"),
	})
	riskThresholds := risk.DefaultThresholds()
	if err := viper.UnmarshalKey("risk.thresholds", &riskThresholds); err != nil {
		context.WithField("err", err).Error("failed to parse risk thresholds")
		panic(err)
	}
	scorer := risk_usecase.NewScorer(&risk_usecase.ScorerCfg{
		BidRepo:    bidRepo,
		BidderRepo: bidderRepo,
		Thresholds: riskThresholds,
	})
	collusion := risk_usecase.NewCollusionDetector(&risk_usecase.CollusionCfg{
		BidRepo:    bidRepo,
		BidderRepo: bidderRepo,
	})
	reporter := risk_usecase.NewReporter(&risk_usecase.ReporterCfg{
		BidRepo:    bidRepo,
		ReportRepo: reportRepo,
		Collusion:  collusion,
		Sink:       auditSink,
		Metrics:    metrics.New("reporter"),
	})
	eventNotifier := notifier.New(viper.GetInt("notifier.poolSize"))
	property := property_usecase.New(&property_usecase.PropertyUseCaseCfg{
		PropertyRepo: propertyRepo,
	})
	auction := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo: auctionRepo,
		BidRepo:     bidRepo,
		Checker:     checker,
		Verifier:    verifier,
		Scorer:      scorer,
		Reporter:    reporter,
		Registry:    registryClient,
		Sink:        auditSink,
		Notifier:    eventNotifier,
		Metrics:     metrics.New("auction"),
	})

	hc_delivery.New(e, hc)
	property_delivery.New(e, property)
	auction_delivery.New(e, auction, property)
	audit_delivery.New(e, auditTrail)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
