package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"liyu1981.xyz/coldtrack-monitor/pkg/analytics"
	"liyu1981.xyz/coldtrack-monitor/pkg/backend"
	"liyu1981.xyz/coldtrack-monitor/pkg/common"
	"liyu1981.xyz/coldtrack-monitor/pkg/config"
	"liyu1981.xyz/coldtrack-monitor/pkg/dashboard"
	"liyu1981.xyz/coldtrack-monitor/pkg/db"
	"liyu1981.xyz/coldtrack-monitor/pkg/feed"
	monitorGrpc "liyu1981.xyz/coldtrack-monitor/pkg/grpc"
	monitorHttp "liyu1981.xyz/coldtrack-monitor/pkg/http"
	"liyu1981.xyz/coldtrack-monitor/pkg/report"
	"liyu1981.xyz/coldtrack-monitor/pkg/scheduler"
	"liyu1981.xyz/coldtrack-monitor/pkg/selection"
	"liyu1981.xyz/coldtrack-monitor/pkg/session"
	"liyu1981.xyz/coldtrack-monitor/pkg/store"
)

func main() {
	configPath := flag.String("config", os.Getenv(common.EnvKeyConfigPath), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := common.GetLogger()
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbInstance := db.GetInstance(db.UseDialector(cfg.DB.Type, cfg.DB.Path))
	preferences := store.NewPreferenceStore(dbInstance)
	archive := store.NewReportArchive(dbInstance)

	sess := session.New()
	backendClient := backend.NewClient(backend.Options{
		BaseURL:    cfg.Backend.BaseURL,
		Timeout:    cfg.Backend.Timeout,
		Retries:    cfg.Backend.Retries,
		BackoffMin: cfg.Backend.BackoffMin,
		BackoffMax: cfg.Backend.BackoffMax,
	}, sess)

	mqttSource := feed.NewMQTTSource(feed.MQTTOptions{
		Broker:   cfg.Feed.Broker,
		ClientID: cfg.Feed.ClientID,
		Username: cfg.Feed.Username,
		Password: cfg.Feed.Password,
	})
	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	if err := mqttSource.Connect(connectCtx); err != nil {
		// paho keeps retrying in the background; subscriptions fail until it connects
		logger.Warn("live feed broker not reachable yet", zap.String("broker", cfg.Feed.Broker), zap.Error(err))
	}
	cancelConnect()
	feedClient := feed.NewClient(mqttSource, cfg.Feed.TopicPrefix)

	machine := selection.NewMachine(backendClient, preferences, feedClient, loc)
	// without a token this only restores the branch id; login reloads the rest
	if err := machine.Init(ctx); err != nil {
		logger.Warn("selection restored partially", zap.Error(err))
	}

	htmlSink, err := report.NewHTMLSink(loc)
	if err != nil {
		log.Fatalf("Error preparing report template: %v", err)
	}
	sink := &report.ArchivingSink{
		Inner:   &report.FileSink{Inner: htmlSink, Dir: cfg.Report.Dir},
		Archive: archive,
	}

	core := (&dashboard.Dashboard{
		Machine: machine,
		Queries: analytics.NewCoordinator(backendClient, cfg.Backend.Timeout),
		Auth:    sess,
		Backend: backendClient,
		Sink:    sink,
		Archive: archive,
		Events:  backendClient,
		Loc:     loc,
	}).WithDefaultServices()

	reports := scheduler.New(backendClient, sink, cfg.Report.Every, cfg.Report.LookbackDays, loc)
	if err := reports.Start(); err != nil {
		log.Fatalf("Error scheduling reports: %v", err)
	}

	defaultRate := rate.Limit(cfg.Server.DefaultRate)
	defaultBurst := cfg.Server.DefaultBurst
	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.Server.DefaultRate, defaultBurst))

	var grpcServer *grpc.Server
	if cfg.Server.GrpcHostPort != "" {
		monitorServer := monitorGrpc.MonitorServer{
			Dashboard:        core,
			RateLimiterStore: dashboard.NewRateLimiterStore(defaultRate, defaultBurst),
		}
		interceptor := monitorServer.CreateRateLimitInterceptor([]string{
			monitorGrpc.MethodGetRealtime,
			monitorGrpc.MethodSelectBranch,
			monitorGrpc.MethodSelectSensor,
			monitorGrpc.MethodRunAnalytics,
		})
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(interceptor))
		monitorGrpc.RegisterMonitorServer(grpcServer, &monitorServer)
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.Server.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}
		go func() {
			logger.Info("start gRPC server on " + cfg.Server.GrpcHostPort)
			if err := grpcServer.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
			}
		}()
	}

	rs := &monitorHttp.RestfulServer{
		Server:           gin.Default(),
		Dashboard:        core,
		RateLimiterStore: dashboard.NewRateLimiterStore(defaultRate, defaultBurst),
	}
	rs.Setup()
	logger.Info("http server created with:", defaultLimiter)

	httpServer := &http.Server{Addr: cfg.Server.HttpHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.Server.HttpHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	reports.Stop()
	machine.Close()
	feedClient.Close()
	mqttSource.Close()
	_ = logger.Sync()
}
