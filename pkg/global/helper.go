package global

import (
	"context"
	"log"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
		os.Exit(1)
	}
	return mongoURI
}

func GetDatabaseName() string {
	dbName := GetEnvOrDefault("MONGODB_DATABASE", "storefront")
	return dbName
}

func GetStripeKey() string {
	key := os.Getenv("STRIPE_KEY")
	if key == "" {
		log.Fatal("STRIPE_KEY is not set in environment variables")
		os.Exit(1)
	}
	return key
}

func GetCheckoutSuccessURL() string {
	return GetEnvOrDefault("CHECKOUT_SUCCESS_URL", "http://localhost:8000/checkout/success")
}

func GetCheckoutCancelURL() string {
	return GetEnvOrDefault("CHECKOUT_CANCEL_URL", "http://localhost:8000/checkout/cancel")
}

func GetInvoiceDir() string {
	return GetEnvOrDefault("INVOICE_DIR", "data/invoices")
}
