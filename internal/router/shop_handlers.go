package router

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"julianmorley.ca/shop/storefront/pkg/cart"
	"julianmorley.ca/shop/storefront/pkg/checkout"
	"julianmorley.ca/shop/storefront/pkg/global"
	"julianmorley.ca/shop/storefront/pkg/invoice"
	"julianmorley.ca/shop/storefront/pkg/models"
	"julianmorley.ca/shop/storefront/pkg/orders"
	"julianmorley.ca/shop/storefront/pkg/redis"
)

func (api *API) HealthCheck(c *gin.Context) {
	if err := api.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

func (api *API) GetIndex(c *gin.Context) {
	api.renderListing(c, "index.html", "/")
}

func (api *API) GetProducts(c *gin.Context) {
	api.renderListing(c, "products.html", "/products")
}

// renderListing drives both listing pages. A missing or malformed page query
// defaults to 1; it is never an error.
func (api *API) renderListing(c *gin.Context, template, path string) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	listing, err := api.Catalog.ListPage(c.Request.Context(), page)
	if err != nil {
		api.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"PageTitle":       "Shop",
		"Path":            path,
		"Prods":           listing.Items,
		"Total":           listing.Total,
		"CurrentPage":     listing.CurrentPage,
		"HasNextPage":     listing.HasNext,
		"HasPreviousPage": listing.HasPrev,
		"NextPage":        listing.NextPage,
		"PreviousPage":    listing.PrevPage,
		"LastPage":        listing.LastPage,
	})
}

// GetProduct serves the detail page with a Redis read-through cache in front
// of the store.
func (api *API) GetProduct(c *gin.Context) {
	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		api.renderError(c, cart.ErrProductNotFound)
		return
	}

	ctx := c.Request.Context()
	csrfToken := optionalCSRFToken(c)

	product, err := redis.GetProductFromCache(ctx, productID.Hex())
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.HTML(http.StatusOK, "product.html", gin.H{
			"PageTitle": product.Title,
			"Product":   product,
			"CSRFToken": csrfToken,
		})
		return
	}

	product, err = api.Catalog.GetProduct(ctx, productID)
	if err != nil {
		api.renderError(c, err)
		return
	}

	if cacheErr := redis.CacheProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: Failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.HTML(http.StatusOK, "product.html", gin.H{
		"PageTitle": product.Title,
		"Product":   product,
		"CSRFToken": csrfToken,
	})
}

// optionalCSRFToken resolves the session cookie if one is present. Detail
// pages are public, but a logged-in visitor needs the token for the
// add-to-cart form.
func optionalCSRFToken(c *gin.Context) string {
	token, err := c.Cookie("session")
	if err != nil || token == "" {
		return ""
	}
	session, err := redis.GetSession(c.Request.Context(), token)
	if err != nil {
		return ""
	}
	return session.CSRFToken
}

func (api *API) GetCart(c *gin.Context) {
	user := currentUser(c)

	lines, err := api.Cart.Resolve(c.Request.Context(), user)
	if err != nil {
		api.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"PageTitle": "Your Cart",
		"Path":      "/cart",
		"Products":  lines,
		"TotalSum":  checkout.Total(lines).StringFixed(2),
		"CSRFToken": currentSession(c).CSRFToken,
	})
}

func (api *API) PostCart(c *gin.Context) {
	user := currentUser(c)

	productID, err := bson.ObjectIDFromHex(c.PostForm("productId"))
	if err != nil {
		api.renderError(c, cart.ErrProductNotFound)
		return
	}

	if err := api.Cart.Add(c.Request.Context(), user, productID); err != nil {
		api.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

func (api *API) DeleteCartItem(c *gin.Context) {
	user := currentUser(c)

	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	if err := api.Cart.Remove(c.Request.Context(), user, productID); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"cartCount": len(user.Cart.Items),
	}))
}

func (api *API) GetCheckout(c *gin.Context) {
	user := currentUser(c)

	summary, err := api.Checkout.Initiate(c.Request.Context(), user)
	if err != nil {
		api.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"PageTitle": "Checkout",
		"Path":      "/checkout",
		"Products":  summary.Lines,
		"TotalSum":  summary.Total.StringFixed(2),
		"SessionID": summary.SessionID,
	})
}

func (api *API) GetCheckoutSuccess(c *gin.Context) {
	api.placeOrder(c)
}

func (api *API) GetCheckoutCancel(c *gin.Context) {
	c.Redirect(http.StatusFound, "/checkout")
}

func (api *API) PostOrder(c *gin.Context) {
	api.placeOrder(c)
}

func (api *API) placeOrder(c *gin.Context) {
	user := currentUser(c)

	if _, err := api.Orders.Place(c.Request.Context(), user); err != nil {
		api.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/orders")
}

func (api *API) GetOrders(c *gin.Context) {
	user := currentUser(c)

	orderList, err := api.Orders.ListForUser(c.Request.Context(), user)
	if err != nil {
		api.renderError(c, err)
		return
	}

	type orderView struct {
		Order models.Order
		Total string
	}
	views := make([]orderView, 0, len(orderList))
	for _, o := range orderList {
		views = append(views, orderView{Order: o, Total: invoice.Total(&o).StringFixed(2)})
	}

	c.HTML(http.StatusOK, "orders.html", gin.H{
		"PageTitle": "Your Orders",
		"Path":      "/orders",
		"Orders":    views,
	})
}

// GetInvoice streams the rendered PDF to the client and a durable file under
// the invoices directory in one fan-out write. The file is regenerated and
// overwritten on every request. If the file sink cannot be opened the client
// still gets the document; once bytes are on the wire, sink failures can only
// be logged.
func (api *API) GetInvoice(c *gin.Context) {
	user := currentUser(c)

	orderID, err := bson.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		api.renderError(c, orders.ErrOrderNotFound)
		return
	}

	doc, err := api.Invoices.Render(c.Request.Context(), orderID, user)
	if err != nil {
		api.renderError(c, err)
		return
	}

	sinks := []io.Writer{c.Writer}
	invoicePath := filepath.Join(api.InvoiceDir, doc.Filename)
	file, err := os.Create(invoicePath)
	if err != nil {
		log.Printf("Failed to open invoice file %s: %v", invoicePath, err)
	} else {
		sinks = append(sinks, file)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+doc.Filename+`"`)
	c.Status(http.StatusOK)

	if err := invoice.WriteAll(doc, sinks...); err != nil {
		log.Printf("Invoice %s delivery error: %v", doc.Filename, err)
	}
}
