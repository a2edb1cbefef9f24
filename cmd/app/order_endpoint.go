package main

import (
	"net/http"

	"KitStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {

	p := g.Group("/orders")

	// GET confirmation breakdown
	p.GET("/:code/summary", func(c echo.Context) error {
		summary, err := os.Summary(c.Request().Context(), c.Param("code"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, summary)
	})

	// CONFIRM checkout: announce downstream and return the breakdown
	p.POST("/:code/confirm", func(c echo.Context) error {
		summary, err := os.Confirm(c.Request().Context(), c.Param("code"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, summary)
	})
}
