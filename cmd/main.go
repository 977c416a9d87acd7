package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"tujjor/internal/admin"
	"tujjor/internal/cart"
	"tujjor/internal/catalog"
	"tujjor/internal/config"
	httpapi "tujjor/internal/http"
	"tujjor/internal/order"
	"tujjor/internal/upstream"

	_ "tujjor/docs"
)

func main() {
	cfg := config.Load()

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamProxies, cfg.UpstreamTimeout)
	catalogSvc := catalog.NewService(client)

	var cartStore cart.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cartStore = cart.NewRedisStore(rdb, cfg.CartTTL)
	} else {
		cartStore = cart.NewMemoryStore(cfg.CartTTL)
	}

	cartSvc := cart.NewService(cartStore, catalogSvc)
	orderSvc := order.NewService(client, cartSvc)
	adminSvc := admin.NewService(client)

	srv := httpapi.NewServer(catalogSvc, cartSvc, orderSvc, adminSvc, cfg.PageSize)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
