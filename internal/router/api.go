package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"julianmorley.ca/shop/storefront/pkg/cart"
	"julianmorley.ca/shop/storefront/pkg/catalog"
	"julianmorley.ca/shop/storefront/pkg/checkout"
	"julianmorley.ca/shop/storefront/pkg/invoice"
	"julianmorley.ca/shop/storefront/pkg/models"
	"julianmorley.ca/shop/storefront/pkg/mongo"
	"julianmorley.ca/shop/storefront/pkg/orders"
	"julianmorley.ca/shop/storefront/pkg/redis"
)

// API carries the service handles the handlers need. Everything is
// constructed in main and passed in; no handler reaches for globals.
type API struct {
	Store      *mongo.Store
	Catalog    *catalog.Service
	Cart       *cart.Service
	Checkout   *checkout.Service
	Orders     *orders.Service
	Invoices   *invoice.Service
	InvoiceDir string
}

func NewAPI(store *mongo.Store, catalogSvc *catalog.Service, cartSvc *cart.Service,
	checkoutSvc *checkout.Service, ordersSvc *orders.Service, invoiceSvc *invoice.Service,
	invoiceDir string) *API {
	return &API{
		Store:      store,
		Catalog:    catalogSvc,
		Cart:       cartSvc,
		Checkout:   checkoutSvc,
		Orders:     ordersSvc,
		Invoices:   invoiceSvc,
		InvoiceDir: invoiceDir,
	}
}

// renderError is the single mapping point from error kinds to responses.
// NotFound and Forbidden keep their statuses; everything else is a generic
// server failure with the detail confined to the log.
func (api *API) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Status":  http.StatusNotFound,
			"Message": "Not Found",
		})
	case errors.Is(err, invoice.ErrForbidden):
		c.HTML(http.StatusForbidden, "error.html", gin.H{
			"Status":  http.StatusForbidden,
			"Message": "Forbidden",
		})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Status":  http.StatusInternalServerError,
			"Message": "Something went wrong",
		})
	}
	c.Abort()
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

func currentSession(c *gin.Context) *redis.Session {
	return c.MustGet("session").(*redis.Session)
}
