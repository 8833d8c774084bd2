package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"julianmorley.ca/shop/storefront/internal/router"
	"julianmorley.ca/shop/storefront/pkg/cart"
	"julianmorley.ca/shop/storefront/pkg/catalog"
	"julianmorley.ca/shop/storefront/pkg/checkout"
	"julianmorley.ca/shop/storefront/pkg/global"
	"julianmorley.ca/shop/storefront/pkg/invoice"
	"julianmorley.ca/shop/storefront/pkg/mongo"
	"julianmorley.ca/shop/storefront/pkg/orders"
	"julianmorley.ca/shop/storefront/pkg/payment"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	client := mongo.Connect()
	store := mongo.NewStore(client, global.GetDatabaseName())
	store.EnsureIndexesOnStartup()

	invoiceDir := global.GetInvoiceDir()
	if err := os.MkdirAll(invoiceDir, 0o755); err != nil {
		log.Fatalf("Failed to create invoice directory %s: %v", invoiceDir, err)
	}

	stripeClient := payment.NewStripeClient(global.GetStripeKey())

	catalogSvc := catalog.NewService(store)
	cartSvc := cart.NewService(store, store)
	checkoutSvc := checkout.NewService(cartSvc, stripeClient,
		global.GetCheckoutSuccessURL(), global.GetCheckoutCancelURL())
	ordersSvc := orders.NewService(cartSvc, store)
	invoiceSvc := invoice.NewService(ordersSvc)

	api := router.NewAPI(store, catalogSvc, cartSvc, checkoutSvc, ordersSvc, invoiceSvc, invoiceDir)

	router.InitEngine()
	router.InitializeRoutes(api)

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
