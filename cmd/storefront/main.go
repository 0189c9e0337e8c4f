package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/premiumstore/storefront/docs"
	"github.com/premiumstore/storefront/internal/cart"
	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/checkout"
	"github.com/premiumstore/storefront/internal/config"
	"github.com/premiumstore/storefront/internal/httpx"
	"github.com/premiumstore/storefront/internal/storage"
	"github.com/premiumstore/storefront/internal/wishlist"
)

// @title        Premium Store API
// @version      1.0
// @description  Storefront: product catalog, cart, wishlist and checkout.
// @BasePath     /
func main() {
	cfg := config.Load()

	backend := storage.Open(cfg.DataDir)
	repo := catalog.NewMemRepo(nil)
	cartStore := cart.NewStore(backend)
	wishlistStore := wishlist.NewStore(backend)
	flow := checkout.NewFlow(cartStore, cfg.ProcessDelay)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/api/products", listProductsHandler(repo, cfg.FetchDelay))
	r.GET("/api/products/:id", getProductHandler(repo))

	r.GET("/cart", getCartHandler(cartStore))
	r.POST("/cart/items", addCartItemHandler(repo, cartStore))
	r.PUT("/cart/items/:id", updateCartItemHandler(cartStore))
	r.DELETE("/cart/items/:id", removeCartItemHandler(cartStore))
	r.DELETE("/cart", clearCartHandler(cartStore))

	r.GET("/wishlist", getWishlistHandler(wishlistStore))
	r.POST("/wishlist/toggle", toggleWishlistHandler(repo, wishlistStore))

	r.GET("/checkout", getCheckoutHandler(flow, cartStore))
	r.PUT("/checkout/shipping", setShippingHandler(flow))
	r.PUT("/checkout/payment", setPaymentHandler(flow))
	r.POST("/checkout/next", nextStepHandler(flow))
	r.POST("/checkout/prev", prevStepHandler(flow))
	r.POST("/checkout/order", placeOrderHandler(flow))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("storefront listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
