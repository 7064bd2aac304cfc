package main

import (
	"context"
	"expvar"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/liliang-cn/film-api/internal/data"
	"github.com/liliang-cn/film-api/internal/jsonlog"
)

var (
	buildTime string
	version   string
)

// 应用配置
type config struct {
	port     int
	env      string
	seedFile string
	limiter  struct {
		rps     float64
		burst   int
		enabled bool
	}
	cors struct {
		trustedOrigins []string
	}
}

// 应用定义
type application struct {
	config config
	logger *jsonlog.Logger
	store  *data.Store
	models data.Models
}

func main() {
	var cfg config
	flag.IntVar(&cfg.port, "port", 3300, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.seedFile, "seed-file", "", "YAML seed file (defaults to the built-in seed)")
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", false, "Enable rate limiter")
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	// 显示版本
	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		fmt.Printf("Build time:\t%s\n", buildTime)
		os.Exit(0)
	}

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)
	defer logger.Sync()

	// 装载种子数据，每次启动都会回到这个状态
	seed, err := loadSeed(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	store := data.NewStore(seed)

	logger.PrintInfo("store seeded", map[string]string{
		"movies":    fmt.Sprint(len(seed.Movies)),
		"directors": fmt.Sprint(len(seed.Directors)),
		"reviews":   fmt.Sprint(len(seed.Reviews)),
		"next_id":   fmt.Sprint(seed.NextID),
	})

	// 发布版本信息
	expvar.NewString("version").Set(version)

	// 发布活动的 goroutine 数
	expvar.Publish("goroutines", expvar.Func(func() interface{} {
		return runtime.NumGoroutine()
	}))

	// 发布各集合的记录数和下一个 id
	expvar.Publish("records", expvar.Func(func() interface{} {
		return map[string]interface{}{
			"counts":  store.Counts(),
			"next_id": store.NextID(),
		}
	}))

	// 发布当前的时间信息
	expvar.Publish("timestamp", expvar.Func(func() interface{} {
		return time.Now().Unix()
	}))

	app := &application{
		config: cfg,
		logger: logger,
		store:  store,
		models: data.NewModels(store),
	}

	// 只在 SIGINT 和 SIGTERM 时关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 启动 server
	err = app.serve(ctx)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}

// loadSeed 没有指定文件时使用内置种子
func loadSeed(cfg config) (data.Seed, error) {
	if cfg.seedFile == "" {
		return data.DefaultSeed()
	}

	f, err := os.Open(cfg.seedFile)
	if err != nil {
		return data.Seed{}, err
	}
	defer f.Close()

	return data.LoadSeed(f)
}
