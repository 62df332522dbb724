package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-indexer/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/coinparams"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/index"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/mempool"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/query"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/script"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/service/watcher"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/storage"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	BlocksDir        string         `long:"blocks-dir" env:"INDEXER_BLOCKS_DIR" description:"directory with blk*.dat files" required:"true"`
	DBPath           string         `long:"db-path" env:"INDEXER_DB_PATH" description:"index database directory" default:"./indexdb"`
	DBEngine         storage.Engine `long:"db-engine" env:"INDEXER_DB_ENGINE" description:"index database engine" choice:"leveldb" choice:"pebble" default:"leveldb"`
	Coin             model.Coin     `long:"coin" env:"INDEXER_COIN" description:"coin name" default:"BTC"`
	Network          model.Network  `long:"network" env:"INDEXER_NETWORK" description:"network name" default:"mainnet"`
	CoinParams       string         `long:"coin-params" env:"INDEXER_COIN_PARAMS" description:"coin parameters file (.json or .toml); derived from network when empty"`
	RPCURL           string         `long:"rpc-url" env:"INDEXER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser          string         `long:"rpc-user" env:"INDEXER_RPC_USER" description:"node RPC username"`
	RPCPassword      string         `long:"rpc-password" env:"INDEXER_RPC_PASSWORD" description:"node RPC password"`
	HTTPAddr         string         `long:"http-addr" env:"INDEXER_HTTP_ADDR" description:"address for query server" default:":8080"`
	MetricsAddr      string         `long:"metrics-addr" env:"INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	ScanInterval     time.Duration  `long:"scan-interval" env:"INDEXER_SCAN_INTERVAL" description:"block directory poll interval" default:"10s"`
	MempoolInterval  time.Duration  `long:"mempool-interval" env:"INDEXER_MEMPOOL_INTERVAL" description:"mempool poll interval" default:"10s"`
	MempoolFetchRate int            `long:"mempool-fetch-rate" env:"INDEXER_MEMPOOL_FETCH_RATE" description:"max getrawtransaction calls per second" default:"200"`
	ZMQAddr          string         `long:"zmq-addr" env:"INDEXER_ZMQ_ADDR" description:"node zmqpubhashblock endpoint (requires zmq build tag)"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	params, err := loadParams(cfg.CoinParams, cfg.Network)
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.DBEngine, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open index store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close index store", zap.Error(err))
		}
	}()
	store := storage.NewObserved(db, metrics.NewStore(string(cfg.DBEngine), cfg.Coin, cfg.Network))

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))

	resolver := script.NewResolver(address.NewCodec(params), logger)
	view := mempool.NewView(resolver)
	monitor, err := mempool.NewMonitor(
		rpc,
		view,
		metrics.NewMempool(cfg.Coin, cfg.Network),
		cfg.MempoolInterval,
		cfg.MempoolFetchRate,
		logger,
	)
	if err != nil {
		return err
	}

	indexer, err := index.NewIndexer(store, resolver, view, metrics.NewIndexer(cfg.Coin, cfg.Network), logger)
	if err != nil {
		return err
	}

	reader := blockfile.NewReader()
	defer func() {
		_ = reader.Close()
	}()
	builder, err := chain.NewBuilder(
		cfg.BlocksDir,
		params,
		reader,
		indexer,
		metrics.NewChainBuilder(cfg.Coin, cfg.Network),
		logger,
	)
	if err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}
	watch, err := watcher.NewService(
		cfg.BlocksDir,
		builder,
		metrics.NewWatcher(cfg.Coin, cfg.Network),
		cfg.ScanInterval,
		cfg.Coin,
		cfg.Network,
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	queries, err := query.NewService(store, view, reader, cfg.BlocksDir, logger)
	if err != nil {
		return err
	}
	handler, err := transport.NewQueryHandler(queries, rpc, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return watch.Run(gctx) })
	g.Go(func() error { return monitor.Run(gctx) })
	g.Go(func() error { return serveQueries(gctx, cfg.HTTPAddr, handler.Handler(), logger) })
	return g.Wait()
}

func loadParams(path string, network model.Network) (coinparams.Params, error) {
	if path == "" {
		return coinparams.FromNetwork(network)
	}
	return coinparams.Load(path, network)
}

func serveQueries(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve queries: %w", err)
	}
	return ctx.Err()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
