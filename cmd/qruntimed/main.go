// qruntimed is the runtime service daemon. It exposes the backend catalog,
// sessions, level-0 transpilation, and sampler jobs over gRPC, backed by
// Redis for the queue and result cache and PostgreSQL for the audit trail.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/perclft/QubitScope/backend"
	"github.com/perclft/QubitScope/internal/server"
	"github.com/perclft/QubitScope/provider"
	"github.com/perclft/QubitScope/provider/fake"
	"github.com/perclft/QubitScope/runtime/runtimepb"
)

func main() {
	port := flag.Int("port", 50051, "gRPC port")
	redisAddr := flag.String("redis-addr", "localhost:6379", "Redis address")
	dbHost := flag.String("db-host", "", "PostgreSQL host, empty disables the audit trail")
	dbPort := flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser := flag.String("db-user", "qscope", "PostgreSQL user")
	dbPass := flag.String("db-pass", "qscope", "PostgreSQL password")
	dbName := flag.String("db-name", "qubitscope", "PostgreSQL database")
	engineURL := flag.String("engine-url", "", "simulator engine base URL, empty uses the stub engine")
	engineKey := flag.String("engine-key", "", "simulator engine API key")
	token := flag.String("token", "", "account token clients must present, empty disables auth")
	cacheTTL := flag.Duration("cache-ttl", time.Hour, "result cache lifetime")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	rdb := redis.NewClient(&redis.Options{Addr: *redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.String("addr", *redisAddr), zap.Error(err))
	}
	log.Info("connected to redis", zap.String("addr", *redisAddr))

	var store *server.Store
	if *dbHost != "" {
		connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			*dbHost, *dbPort, *dbUser, *dbPass, *dbName)
		store, err = server.OpenStore(connStr)
		if err != nil {
			log.Fatal("database init failed", zap.Error(err))
		}
		defer store.Close()
		log.Info("audit trail enabled", zap.String("host", *dbHost), zap.String("db", *dbName))
	}

	var engine server.Engine
	if *engineURL != "" {
		engine = server.NewHTTPEngine(*engineURL, *engineKey)
		log.Info("using HTTP engine", zap.String("url", *engineURL))
	} else {
		engine = &server.StubEngine{PerOpDelay: 50 * time.Millisecond}
		log.Info("using stub engine")
	}

	catalog := buildCatalog()

	srv := server.New(log, rdb, store, catalog, engine, server.Config{
		Token:    *token,
		CacheTTL: *cacheTTL,
	})

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatal("listen failed", zap.Int("port", *port), zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	runtimepb.RegisterRuntimeServer(grpcServer, srv)

	log.Info("runtime service starting",
		zap.Int("port", *port),
		zap.Int("backends", len(catalog.List())))
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal("serve failed", zap.Error(err))
	}
}

// buildCatalog registers the snapshot devices plus the hosted simulator.
func buildCatalog() *provider.Registry {
	catalog := provider.NewRegistry()
	for _, b := range fake.NewProvider().Backends() {
		catalog.Register(b)
	}
	catalog.Register(simulatorSnapshot().Backend())
	return catalog
}

// simulatorSnapshot describes the hosted QASM simulator: wide, fully
// connected, and uncharacterized.
func simulatorSnapshot() *backend.Snapshot {
	return &backend.Snapshot{
		Name:        "ibmq_qasm_simulator",
		Version:     "0.1.547",
		OnlineDate:  time.Date(2019, 5, 2, 0, 0, 0, 0, time.UTC),
		NumQubits:   32,
		MaxCircuits: 300,
		Simulator:   true,
		OperationNames: []string{
			"id", "h", "x", "y", "z", "s", "t", "sx",
			"rx", "ry", "rz", "u1", "u2", "u3",
			"cx", "cz", "swap", "measure", "reset", "barrier",
		},
	}
}
