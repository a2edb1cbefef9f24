package main

import (
	"net/http"

	"KitStoreAPI/internal/cart"
	"KitStoreAPI/internal/middleware"
	"KitStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type quantityDeltaRequest struct {
	Delta int `json:"delta"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart (works for both guests and accounts)
	p.GET("", func(c echo.Context) error {
		sess := middleware.ResolveSession(c)
		view, err := cs.Get(c.Request().Context(), sess.Kind, sess.Key)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, view)
	})

	// CHANGE quantity by delta
	p.PATCH("/:key", func(c echo.Context) error {
		sess := middleware.ResolveSession(c)
		req := new(quantityDeltaRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		out, err := cs.ChangeQuantity(c.Request().Context(), sess.Kind, sess.Key, c.Param("key"), req.Delta)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if out == cart.NotFound {
			return c.JSON(http.StatusOK, map[string]interface{}{"applied": false, "message": "no such item"})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"applied": true, "message": "updated"})
	})

	// REMOVE item
	p.DELETE("/:key", func(c echo.Context) error {
		sess := middleware.ResolveSession(c)
		out, err := cs.Remove(c.Request().Context(), sess.Kind, sess.Key, c.Param("key"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if out == cart.NotFound {
			return c.JSON(http.StatusOK, map[string]interface{}{"applied": false, "message": "no such item"})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"applied": true, "message": "removed"})
	})
}
