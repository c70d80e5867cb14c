package main

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniCart/internal/cart"
	"MiniCart/internal/catalog"
	"MiniCart/internal/shop"
	"MiniCart/pkg/kit"
)

func main() {
	envErr := godotenv.Load()

	service := "shop"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn("load .env failed", zap.Error(envErr))
	}

	port := getenv("PORT", "5000")

	ctx := context.Background()

	cat, err := openCatalog(ctx, os.Getenv("CATALOG_DSN"))
	if err != nil {
		log.Fatal("load catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", cat.Len()))

	reg := prometheus.NewRegistry()
	store := cart.NewStore(cat, cart.NewMetrics(reg))

	deps := shop.Deps{
		Catalog: cat,
		Cart:    store,
	}
	if limit := getenvInt("CART_RATE_LIMIT", 0); limit > 0 {
		deps.CartLimiter = kit.NewIPRateLimiter(limit, time.Minute)
	}

	h := shop.NewHandler(deps, shop.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: getenvBool("METRICS_ENABLED", false),
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "*")),
	})

	log.Info("server running", zap.String("url", "http://localhost:"+port))
	if err := kit.RunHTTPServer(ctx, ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// openCatalog uses the built-in products unless a Postgres DSN is given.
func openCatalog(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	if dsn == "" {
		return catalog.NewSeeded(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return catalog.LoadPostgres(ctx, db)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
