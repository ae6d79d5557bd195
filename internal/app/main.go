package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/egz13/logprobe/internal/broker"
	kafkabroker "github.com/egz13/logprobe/internal/broker/kafka"
	"github.com/egz13/logprobe/internal/config"
	v1 "github.com/egz13/logprobe/internal/controller/http/v1"
	"github.com/egz13/logprobe/internal/metrics"
	"github.com/egz13/logprobe/internal/repo"
	"github.com/egz13/logprobe/internal/resolver"
	"github.com/egz13/logprobe/internal/service"
	errorsUtils "github.com/egz13/logprobe/pkg/errors"
	"github.com/egz13/logprobe/pkg/httpserver"
	"github.com/egz13/logprobe/pkg/logger"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Metrics
	counters := metrics.New()

	// Repos
	repositories := repo.NewRepositories()

	// Path resolver
	pathResolver := resolver.New(resolver.FileConfig{
		LogDir:     cfg.Target.LogDir,
		AppName:    cfg.Target.AppName,
		AppPackage: cfg.Target.AppPackage,
		ErrorPath:  cfg.Target.ErrorPath,
		WarnPath:   cfg.Target.WarnPath,
		AllPath:    cfg.Target.AllPath,
	})

	// Broker
	var producer broker.Producer
	if cfg.Broker.Enabled {
		log.Info("Connecting to Kafka")
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Broker.Brokers,
			Topic:   cfg.Broker.Topic,
		})
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Resolver:       pathResolver,
		Counters:       counters,
		BrokerProducer: producer,
		Limits: service.Limits{
			MaxBlockLines:       cfg.Analyzer.MaxBlockLines,
			MaxCauseDepth:       cfg.Analyzer.MaxCauseDepth,
			ContextLines:        cfg.Analyzer.ContextLines,
			MaxDefects:          cfg.Analyzer.MaxDefects,
			MaxMatches:          cfg.Analyzer.MaxMatches,
			SearchMaxLines:      cfg.Analyzer.SearchMaxLines,
			KeepThrowSite:       cfg.Analyzer.KeepThrowSite,
			CaseSensitiveSearch: cfg.Analyzer.CaseSensitiveSearch,
		},
	}
	services := service.NewServices(deps)

	// HTTP Server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	v1.RegisterRoutes(handler, services, counters)
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	err = metricsServer.Shutdown()
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	err = httpServer.Shutdown()
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
