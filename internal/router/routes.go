package router

func InitializeRoutes(api *API) {
	Router.GET("/health", api.HealthCheck)

	Router.GET("/", api.GetIndex)
	Router.GET("/products", api.GetProducts)
	Router.GET("/products/:productId", api.GetProduct)

	Router.POST("/signup", api.PostSignup)
	Router.POST("/login", api.PostLogin)
	Router.POST("/logout", api.PostLogout)

	shop := Router.Group("/")
	shop.Use(CurrentUser(api.Store))
	{
		shop.GET("/cart", api.GetCart)
		shop.POST("/cart", CSRFGuard(), api.PostCart)
		shop.DELETE("/cart/items/:productId", CSRFGuard(), api.DeleteCartItem)

		shop.GET("/checkout", api.GetCheckout)
		shop.GET("/checkout/success", api.GetCheckoutSuccess)
		shop.GET("/checkout/cancel", api.GetCheckoutCancel)

		shop.POST("/orders", CSRFGuard(), api.PostOrder)
		shop.GET("/orders", api.GetOrders)
		shop.GET("/orders/:orderId/invoice", api.GetInvoice)
	}
}
