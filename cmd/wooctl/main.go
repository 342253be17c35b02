// Command wooctl exercises the client against a live store or, with
// WOOCOMMERCE_FAKE=true, against synthesized data only. Configuration is
// read from the environment, optionally via a .env file.
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	woocommerce "github.com/loaidev64/woocommerce-go"
	"github.com/loaidev64/woocommerce-go/storage/redisstore"

	"github.com/redis/go-redis/v9"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	storeURL := os.Getenv("WOOCOMMERCE_STORE_URL")
	if storeURL == "" {
		storeURL = "http://localhost:8080"
	}
	consumerKey := os.Getenv("WOOCOMMERCE_CONSUMER_KEY")
	consumerSecret := os.Getenv("WOOCOMMERCE_CONSUMER_SECRET")
	useFaker, _ := strconv.ParseBool(os.Getenv("WOOCOMMERCE_FAKE"))
	if !useFaker && (consumerKey == "" || consumerSecret == "") {
		logger.Fatal().Msg("WOOCOMMERCE_CONSUMER_KEY and WOOCOMMERCE_CONSUMER_SECRET are required")
	}

	opts := []woocommerce.Option{
		woocommerce.WithLogger(logger),
		woocommerce.WithFakerDefault(useFaker),
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		opts = append(opts, woocommerce.WithUserStore(redisstore.New(rdb)))
		logger.Info().Str("addr", redisAddr).Msg("Using Redis user store")
	}

	client, err := woocommerce.NewClient(storeURL, consumerKey, consumerSecret, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := client.ListProducts(ctx, &woocommerce.ProductListOptions{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to list products")
	}
	for _, p := range products {
		ev := logger.Info()
		if p.ID != nil {
			ev = ev.Int64("id", *p.ID)
		}
		if p.Name != nil {
			ev = ev.Str("name", *p.Name)
		}
		if p.Price != nil {
			ev = ev.Str("price", *p.Price)
		}
		ev.Msg("product")
	}

	orders, err := client.ListOrders(ctx, &woocommerce.OrderListOptions{})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to list orders")
	}
	logger.Info().Int("count", len(orders)).Msg("orders fetched")
}
