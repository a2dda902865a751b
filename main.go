//
// articles
// ========
// A small REST web service serving an article resource with cache-aside
// reads: lookups check the in-process cache first and fall back to Postgres,
// populating the cache on the way out.
//
// Boot the server:
// ----------------
// $ go run main.go
//
// Client requests:
// ----------------
// $ curl http://localhost:3333/
// root.
//
// $ curl http://localhost:3333/articles/5
// {"data":{"id":5,"title":"Go","content":"Intro"}}
//
// $ curl http://localhost:3333/articles/404
// {"status":"Resource not found.","error":"Article not found"}
//
// $ curl -X POST -d '{"title":"Go","content":"Intro"}' http://localhost:3333/articles
// {"data":{"id":5,"title":"Go","content":"Intro"}}
//
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/docgen"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/cache"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

const ServiceName = "articles"

type CtxKey int8

const (
	CtxKeyLogger CtxKey = iota
)

type App struct {
	sugarLogger *zap.SugaredLogger
	config      *config.Config
}

// nolint
func main() {

	// nolint
	var (
		routes   = flag.Bool("routes", config.GetEnvBool(ServiceName+"_routes", false), "Generate router documentation")
		addr     = flag.String("addr", config.GetEnv(ServiceName+"_ADDR", ":3333"), "application port")
		diagPort = flag.String("diag_addr", config.GetEnv(ServiceName+"_DIAG_ADDR", ":9999"), "diag port")
		dsn      = flag.String("dsn", config.GetEnv(ServiceName+"_DATABASE_DSN", ""), "postgres DSN")
		cfgPath  = flag.String("config", config.GetEnv(ServiceName+"_CONFIG", ""), "optional YAML config file")
	)

	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	cfg := &config.Config{
		Addr:     *addr,
		DiagAddr: *diagPort,
		DB:       config.DBConfig{DSN: *dsn},
	}
	if *cfgPath != "" {
		fileCfg, err := config.Load(*cfgPath)
		if err != nil {
			sugar.Panicf("failed to load config %s: %v", *cfgPath, err)
		}
		cfg.Merge(fileCfg)
	}

	a := App{
		sugarLogger: sugar,
		config:      cfg,
	}

	promConfig := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(promConfig.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)
	exporter, err := prometheus.New(promConfig, c)
	if err != nil {
		a.sugarLogger.Panicf("failed to initialize prometheus exporter %v", err)
	}
	global.SetMeterProvider(exporter.MeterProvider())

	meter := global.Meter(ServiceName)
	labels := []attribute.KeyValue{
		attribute.String("status", "200")}
	ClientCompletedCount := metric.Must(meter).NewInt64Counter(
		"http/client/completed_count",
		metric.WithDescription("Count of completed requests, by HTTP method and response status"),
	).Bind(labels...)
	defer ClientCompletedCount.Unbind()

	cacheLabels := []attribute.KeyValue{
		attribute.String("resource", "article")}
	articleMetrics := &article.Metrics{
		CacheHits: metric.Must(meter).NewInt64Counter(
			"cache/article/hit_count",
			metric.WithDescription("Count of article reads served from the cache"),
		).Bind(cacheLabels...),
		CacheMisses: metric.Must(meter).NewInt64Counter(
			"cache/article/miss_count",
			metric.WithDescription("Count of article reads that fell through to the store"),
		).Bind(cacheLabels...),
	}

	articleStore := store.NewPostgres(store.PostgresConfig{
		DSN:          cfg.DB.DSN,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		ConnMaxIdle:  cfg.DB.ConnMaxIdle(),
		ConnMaxLife:  cfg.DB.ConnMaxLife(),
	})
	articleCache := cache.NewMemory()
	rs := article.NewResource(articleStore, articleCache, sugar, articleMetrics)

	r := a.router(rs, ClientCompletedCount)

	diagRouter := chi.NewRouter()
	diagRouter.Get("/metrics", exporter.ServeHTTP)

	// Passing -routes to the program will generate docs for the above
	// router definition and exit before anything external is dialed.
	if *routes {
		// nolint
		fmt.Println(docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
			ProjectPath: "github.com/SergeyParamoshkin/articles",
			Intro:       "Welcome to the articles service generated docs.",
		}))

		return
	}

	if err := articleStore.Connect(context.Background()); err != nil {
		a.sugarLogger.Panicf("failed to connect to postgres: %v", err)
	}
	defer articleStore.Close()

	go func() {
		err = http.ListenAndServe(cfg.Addr, r)
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	}()

	err = http.ListenAndServe(cfg.DiagAddr, diagRouter)
	if err != nil {
		a.sugarLogger.Errorw(err.Error())
	}

}

func (a *App) router(rs *article.Resource, completed metric.BoundInt64Counter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(a.Logger)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("root."))
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
		logger.Infow("ping with middle")
		completed.Add(r.Context(), 1)
		_, err := w.Write([]byte("pong"))
		if err != nil {
			a.sugarLogger.Errorw(err.Error())
		}
	})

	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		a.sugarLogger.Panicw("panic")
	})

	// RESTy routes for "articles" resource
	r.Mount("/articles", rs.Routes())

	return r
}

func (a *App) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, a.sugarLogger)))
	})
}
