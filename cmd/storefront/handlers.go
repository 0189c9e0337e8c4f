package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/premiumstore/storefront/internal/cart"
	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/checkout"
	"github.com/premiumstore/storefront/internal/pricing"
	"github.com/premiumstore/storefront/internal/wishlist"
)

type cartResponse struct {
	Items   []cart.Item     `json:"items"`
	Count   int             `json:"count"`
	Pricing pricing.Display `json:"pricing"`
}

func cartBody(items []cart.Item) cartResponse {
	return cartResponse{
		Items:   items,
		Count:   cart.ItemCount(items),
		Pricing: pricing.Calculate(items).Display(),
	}
}

// listProductsHandler godoc
// @Summary      List products
// @Description  Category/stock filtering and sorting happen server-side.
// @Param        category  query  string  false  "category, 'all' bypasses"
// @Param        inStock   query  string  false  "set to 'true' to keep only in-stock items"
// @Param        sort      query  string  false  "price-low | price-high | rating | newest"
// @Success      200  {object}  catalog.ListResponse
// @Failure      500  {object}  catalog.ErrorResponse
// @Router       /api/products [get]
func listProductsHandler(repo catalog.Repository, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// simulated network latency of the mock source
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
				return
			}
		}

		q := catalog.Query{
			Category: c.Query("category"),
			InStock:  c.Query("inStock") == "true",
			Sort:     c.Query("sort"),
		}
		products, err := repo.List(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, catalog.ErrorResponse{
				Error:     "Failed to fetch products",
				Timestamp: time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, catalog.ListResponse{
			Success:   true,
			Data:      products,
			Total:     len(products),
			Timestamp: time.Now().UTC(),
		})
	}
}

// getProductHandler godoc
// @Summary  Get one product
// @Param    id   path      int  true  "product id"
// @Success  200  {object}  catalog.Product
// @Failure  404  {object}  catalog.HTTPError
// @Router   /api/products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid id"})
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// getCartHandler godoc
// @Summary  Cart snapshot with pricing
// @Success  200  {object}  cartResponse
// @Router   /cart [get]
func getCartHandler(cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartBody(cartStore.Items()))
	}
}

type addCartItemRequest struct {
	ProductID int `json:"product_id"`
}

// addCartItemHandler is the add-to-cart trigger: it resolves the product and
// refuses out-of-stock items before the store sees them.
// @Summary  Add a product to the cart
// @Param    body  body      addCartItemRequest  true  "product id"
// @Success  201   {object}  cartResponse
// @Failure  404   {object}  catalog.HTTPError
// @Failure  409   {object}  catalog.HTTPError
// @Router   /cart/items [post]
func addCartItemHandler(repo catalog.Repository, cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		p, err := repo.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		if !p.InStock {
			c.JSON(http.StatusConflict, catalog.HTTPError{Error: "product is out of stock"})
			return
		}
		items := cartStore.Add(*p)
		c.JSON(http.StatusCreated, cartBody(items))
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// updateCartItemHandler sets a line's quantity; zero or less removes it.
// @Summary  Update a cart line's quantity
// @Param    id    path      int                    true  "product id"
// @Param    body  body      updateQuantityRequest  true  "new quantity"
// @Success  200   {object}  cartResponse
// @Router   /cart/items/{id} [put]
func updateCartItemHandler(cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid id"})
			return
		}
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		c.JSON(http.StatusOK, cartBody(cartStore.UpdateQuantity(id, req.Quantity)))
	}
}

// removeCartItemHandler deletes a line; absent ids are a no-op.
// @Summary  Remove a product from the cart
// @Param    id   path      int  true  "product id"
// @Success  200  {object}  cartResponse
// @Router   /cart/items/{id} [delete]
func removeCartItemHandler(cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid id"})
			return
		}
		c.JSON(http.StatusOK, cartBody(cartStore.Remove(id)))
	}
}

// clearCartHandler empties the cart.
// @Summary  Clear the cart
// @Success  204
// @Router   /cart [delete]
func clearCartHandler(cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartStore.Clear()
		c.Status(http.StatusNoContent)
	}
}

type wishlistResponse struct {
	Items   []catalog.Product `json:"items"`
	IsAdded *bool             `json:"is_added,omitempty"`
}

// getWishlistHandler godoc
// @Summary  Wishlist snapshot
// @Success  200  {object}  wishlistResponse
// @Router   /wishlist [get]
func getWishlistHandler(ws *wishlist.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, wishlistResponse{Items: ws.Items()})
	}
}

// toggleWishlistHandler godoc
// @Summary  Toggle a product on the wishlist
// @Param    body  body      addCartItemRequest  true  "product id"
// @Success  200   {object}  wishlistResponse
// @Failure  404   {object}  catalog.HTTPError
// @Router   /wishlist/toggle [post]
func toggleWishlistHandler(repo catalog.Repository, ws *wishlist.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		p, err := repo.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, catalog.HTTPError{Error: "product not found"})
			return
		}
		items, isAdded := ws.Toggle(*p)
		c.JSON(http.StatusOK, wishlistResponse{Items: items, IsAdded: &isAdded})
	}
}

type checkoutState struct {
	Step       int             `json:"step"`
	Processing bool            `json:"processing"`
	Pricing    pricing.Display `json:"pricing"`
}

type redirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// guardCheckout enforces the empty-cart redirect on every checkout request.
func guardCheckout(c *gin.Context, flow *checkout.Flow) bool {
	if flow.GuardCart() {
		c.JSON(http.StatusConflict, redirectResponse{Error: "cart is empty", Redirect: "/cart"})
		return false
	}
	return true
}

// getCheckoutHandler godoc
// @Summary  Current checkout step and totals
// @Success  200  {object}  checkoutState
// @Failure  409  {object}  redirectResponse
// @Router   /checkout [get]
func getCheckoutHandler(flow *checkout.Flow, cartStore *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !guardCheckout(c, flow) {
			return
		}
		c.JSON(http.StatusOK, checkoutState{
			Step:       flow.Step(),
			Processing: flow.Processing(),
			Pricing:    pricing.Calculate(cartStore.Items()).Display(),
		})
	}
}

// setShippingHandler stores the shipping fields for validation at Next.
// @Summary  Set shipping info
// @Param    body  body  checkout.ShippingInfo  true  "shipping fields"
// @Success  204
// @Router   /checkout/shipping [put]
func setShippingHandler(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info checkout.ShippingInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		flow.SetShipping(info)
		c.Status(http.StatusNoContent)
	}
}

// setPaymentHandler normalizes card/expiry display formatting before storing.
// @Summary  Set payment info
// @Param    body  body  checkout.PaymentInfo  true  "payment fields"
// @Success  204
// @Router   /checkout/payment [put]
func setPaymentHandler(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info checkout.PaymentInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, catalog.HTTPError{Error: "invalid json"})
			return
		}
		info.CardNumber = checkout.FormatCardNumber(info.CardNumber)
		info.ExpiryDate = checkout.FormatExpiry(info.ExpiryDate)
		flow.SetPayment(info)
		c.Status(http.StatusNoContent)
	}
}

// nextStepHandler godoc
// @Summary  Advance the checkout flow
// @Success  200  {object}  checkoutState
// @Failure  422  {object}  catalog.HTTPError
// @Router   /checkout/next [post]
func nextStepHandler(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !guardCheckout(c, flow) {
			return
		}
		if err := flow.Next(); err != nil {
			c.JSON(http.StatusUnprocessableEntity, catalog.HTTPError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": flow.Step()})
	}
}

// prevStepHandler godoc
// @Summary  Step back in the checkout flow
// @Success  200  {object}  checkoutState
// @Router   /checkout/prev [post]
func prevStepHandler(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow.Prev()
		c.JSON(http.StatusOK, gin.H{"step": flow.Step()})
	}
}

// placeOrderHandler godoc
// @Summary  Place the order
// @Description  Runs the simulated submission, clears the cart and returns the receipt.
// @Success  201  {object}  checkout.Order
// @Failure  409  {object}  catalog.HTTPError
// @Router   /checkout/order [post]
func placeOrderHandler(flow *checkout.Flow) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := flow.PlaceOrder(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart),
				errors.Is(err, checkout.ErrNotAtReview),
				errors.Is(err, checkout.ErrProcessing):
				c.JSON(http.StatusConflict, catalog.HTTPError{Error: err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, catalog.HTTPError{Error: err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
