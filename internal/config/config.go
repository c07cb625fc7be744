package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	LogLevel    string
	Store       StoreConfig
	Shop        ShopConfig
	Checkout    CheckoutConfig
}

type StoreConfig struct {
	Path string
}

type ShopConfig struct {
	Name           string
	WhatsAppNumber string
}

type CheckoutConfig struct {
	ShippingFee       int64
	RequireLogin      bool
	NotificationDelay time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_PATH", "storefront.db")
	viper.SetDefault("SHOP_NAME", "your.i scent")
	viper.SetDefault("WHATSAPP_NUMBER", "6281234567890")
	viper.SetDefault("SHIPPING_FEE", "15000")
	viper.SetDefault("REQUIRE_LOGIN_FOR_CHECKOUT", "false")
	viper.SetDefault("NOTIFICATION_HIDE_MS", "3000")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	shippingFee, err := strconv.ParseInt(getEnvOrViper("SHIPPING_FEE", "15000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FEE: %w", err)
	}
	if shippingFee < 0 {
		return nil, fmt.Errorf("SHIPPING_FEE must not be negative")
	}

	requireLogin, err := strconv.ParseBool(getEnvOrViper("REQUIRE_LOGIN_FOR_CHECKOUT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRE_LOGIN_FOR_CHECKOUT: %w", err)
	}

	hideMS, err := strconv.Atoi(getEnvOrViper("NOTIFICATION_HIDE_MS", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_HIDE_MS: %w", err)
	}

	cfg := &Config{
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Path: getEnvOrViper("STORE_PATH", "storefront.db"),
		},
		Shop: ShopConfig{
			Name:           getEnvOrViper("SHOP_NAME", "your.i scent"),
			WhatsAppNumber: getEnvOrViper("WHATSAPP_NUMBER", "6281234567890"),
		},
		Checkout: CheckoutConfig{
			ShippingFee:       shippingFee,
			RequireLogin:      requireLogin,
			NotificationDelay: time.Duration(hideMS) * time.Millisecond,
		},
	}

	if cfg.Shop.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
