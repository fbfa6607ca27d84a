package di

import (
	"context"
	"fmt"
	"os"
	"time"

	"DeceptionIndex/internal/domain/repository"
	"DeceptionIndex/internal/handler/api"
	internalrepo "DeceptionIndex/internal/repository"
	"DeceptionIndex/internal/service/breaker"
	"DeceptionIndex/internal/service/mlbstats"
	"DeceptionIndex/internal/service/ratelimit"
	"DeceptionIndex/internal/service/report"
	"DeceptionIndex/internal/service/savant"
	"DeceptionIndex/internal/usecase"
	"DeceptionIndex/pkg/cache"
	pkgch "DeceptionIndex/pkg/clickhouse"
	"DeceptionIndex/pkg/config"
	xhttp "DeceptionIndex/pkg/http"
	pkgkafka "DeceptionIndex/pkg/kafka"
	applogger "DeceptionIndex/pkg/logger"
	"DeceptionIndex/pkg/metrics"
	"DeceptionIndex/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(cfg *config.Config) repository.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.New()
}

// ProvideHTTPClient creates the rate-limited provider HTTP client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Provider.Timeout),
		xhttp.WithUserAgent(cfg.Provider.UserAgent),
		xhttp.WithRateLimit(cfg.Provider.RPS, cfg.Provider.Burst),
	)
}

// ProvidePlayerLookup creates the MLB Stats API player lookup.
func ProvidePlayerLookup(cfg *config.Config, client *xhttp.Client) repository.PlayerLookup {
	return mlbstats.New(cfg.Provider.LookupURL, client)
}

// ProvidePitchSource creates the Statcast CSV pitch source.
func ProvidePitchSource(cfg *config.Config, client *xhttp.Client) repository.PitchSource {
	return savant.New(cfg.Provider.SavantURL, client)
}

// ProvideCache creates the provider response cache selected by cache.type.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (cache.Service, func(), error) {
	var svc cache.Service
	switch cfg.Cache.Type {
	case "none":
		svc = cache.Nop{}
	case "memory":
		svc = cache.NewMemoryCache(
			cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize),
			cache.WithMemoryDefaultTTL(cfg.Cache.TTL),
		)
	case "redis", "layered":
		rc, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.RedisAddr()),
			cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		svc = rc
		if cfg.Cache.Type == "layered" {
			svc = cache.NewLayeredCache(rc,
				cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize),
				cache.WithLayeredPromoteTTL(cfg.Cache.TTL),
			)
		}
	default:
		return nil, nil, fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
	}
	l.Info("cache ready", applogger.String("type", cfg.Cache.Type), applogger.Duration("ttl", cfg.Cache.TTL))
	cleanup := func() {
		if err := svc.Close(); err != nil {
			l.Warn("cache close error", applogger.Error(err))
		}
	}
	return svc, cleanup, nil
}

// ProvideBreaker creates the provider circuit breaker.
func ProvideBreaker(cfg *config.Config, l *applogger.Logger, m repository.Metrics) *breaker.Breaker {
	return breaker.New("provider", cfg.Provider.Breaker.MaxFailures, cfg.Provider.Breaker.OpenTimeout, func(from, to string) {
		m.RecordError("breaker_" + to)
		l.Warn("provider breaker state change", applogger.String("from", from), applogger.String("to", to))
	})
}

// ProvidePacer creates the fixed post-fetch delay.
func ProvidePacer(cfg *config.Config) *ratelimit.Pacer {
	return ratelimit.NewPacer(cfg.Provider.PaceDelay)
}

// ProvideFetcher creates the per-pitcher fetch use case.
func ProvideFetcher(
	cfg *config.Config,
	lookup repository.PlayerLookup,
	source repository.PitchSource,
	store cache.Service,
	guard *breaker.Breaker,
	pacer *ratelimit.Pacer,
	m repository.Metrics,
	l *applogger.Logger,
) (*usecase.PitchFetcher, error) {
	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	return usecase.NewPitchFetcher(lookup, source, store, guard, pacer, m, l,
		usecase.FetchOptions{Window: window, TTL: cfg.Cache.TTL}), nil
}

// ProvideReporter creates the chart, CSV and console reporter.
func ProvideReporter(cfg *config.Config, l *applogger.Logger) *report.Reporter {
	return report.New(report.Options{
		Dir:   cfg.Output.Dir,
		CSV:   cfg.Output.CSV,
		Team:  cfg.Output.Team,
		Label: cfg.Output.Label,
		Charts: report.ChartFiles{
			Score:      cfg.Output.Charts.Score,
			ReleaseVar: cfg.Output.Charts.ReleaseVar,
			VeloSep:    cfg.Output.Charts.VeloSep,
			SpinDiff:   cfg.Output.Charts.SpinDiff,
		},
	}, os.Stdout, l)
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithTopic(cfg.Kafka.Topic),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithHashByKey(true),
		pkgkafka.WithAutoCreateTopic(cfg.Kafka.AutoCreate),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideScoreSink creates the result sink selected by backend.type. It
// returns a nil sink for "none".
func ProvideScoreSink(cfg *config.Config, l *applogger.Logger) (repository.ScoreSink, func(), error) {
	var sink repository.ScoreSink
	switch cfg.Backend.Type {
	case "none":
		return nil, func() {}, nil
	case "clickhouse":
		client, err := ProvideClickHouseClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := internalrepo.NewCHScoreStore(ctx, client, l)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("clickhouse schema: %w", err)
		}
		sink = store
	case "kafka":
		producer, err := ProvideKafkaProducer(cfg)
		if err != nil {
			return nil, nil, err
		}
		sink = internalrepo.NewKafkaScorePublisher(producer)
	default:
		return nil, nil, fmt.Errorf("unknown backend type %q", cfg.Backend.Type)
	}
	l.Info("score sink ready", applogger.String("backend", cfg.Backend.Type))
	cleanup := func() {
		if err := sink.Close(); err != nil {
			l.Warn("score sink close error", applogger.Error(err))
		}
	}
	return sink, cleanup, nil
}

// ProvideScoreboard creates the shared latest-result holder.
func ProvideScoreboard() *usecase.Scoreboard {
	return usecase.NewScoreboard()
}

// ProvidePipeline creates the scoring pipeline.
func ProvidePipeline(
	cfg *config.Config,
	fetcher *usecase.PitchFetcher,
	reporter *report.Reporter,
	sink repository.ScoreSink,
	board *usecase.Scoreboard,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Pipeline {
	return usecase.NewPipeline(fetcher, cfg.Roster, cfg.Season.Months, reporter, sink, board, m, l)
}

// ProvideScoresHandler creates the HTTP handler for the scoreboard.
func ProvideScoresHandler(l *applogger.Logger, board *usecase.Scoreboard) *api.ScoresEchoHandler {
	return api.NewScoresEchoHandler(l, board)
}

// ProvideHTTPServer creates the serve-mode HTTP server.
func ProvideHTTPServer(cfg *config.Config, h *api.ScoresEchoHandler, l *applogger.Logger) *xhttp.Server {
	return xhttp.NewServer(h, l,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetrics(cfg.Metrics.Enabled),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	fetcher *usecase.PitchFetcher,
	httpServer *xhttp.Server,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, pipeline, fetcher, httpServer, l)
}
