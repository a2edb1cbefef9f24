package main

import (
	"net/http"
	"strconv"

	"KitStoreAPI/internal/middleware"
	"KitStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCatalogRoutes(g *echo.Group, cs *services.CatalogService) {
	p := g.Group("/manage")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	// GET product grid + current selection
	p.GET("/products", func(c echo.Context) error {
		view, err := cs.Get(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, view)
	})

	// ADD product
	p.POST("/products", func(c echo.Context) error {
		product, err := cs.Add(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, product)
	})

	// EDIT all products
	p.PUT("/products", func(c echo.Context) error {
		view, err := cs.EditAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, view)
	})

	// EDIT one product
	p.PUT("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		view, missed, err := cs.Edit(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"catalog": view, "missed": missed})
	})

	// TOGGLE selection
	p.POST("/selection/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		}
		view, err := cs.ToggleSelect(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, view)
	})

	// DELETE selected products
	p.DELETE("/selection", func(c echo.Context) error {
		view, missed, err := cs.DeleteSelected(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"catalog": view, "missed": missed})
	})

	// DELETE every product
	p.DELETE("/products", func(c echo.Context) error {
		view, err := cs.DeleteAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, view)
	})
}
