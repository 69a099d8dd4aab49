package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/nicgen/buy-02/clients"
	"github.com/nicgen/buy-02/commands"
	"github.com/nicgen/buy-02/config"
	"github.com/nicgen/buy-02/logger"
	"github.com/nicgen/buy-02/services"
	"github.com/nicgen/buy-02/storage"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	store, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		logger.Error("Could not open local state", err)
		os.Exit(1)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	transport := clients.NewAuthTransport(nil, services.StoreTokenSource{Store: store}, limiter)
	api := clients.NewAPIClient(cfg.APIBaseURL, cfg.RequestTimeout, transport)

	app := &commands.App{Out: os.Stdout}
	auth := services.NewAuthService(api, store, app)
	transport.SetAuthFailureHook(func() {
		auth.Invalidate()
		app.NavigateTo(services.RouteLogin)
	})

	cart := services.NewCartService(store)
	orders := services.NewOrderService(api)

	app.Auth = auth
	app.Products = services.NewProductService(api)
	app.Orders = orders
	app.Wishlist = services.NewWishlistService(api)
	app.Cart = cart
	app.Checkout = services.NewCheckoutService(cart, orders, auth, app)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
