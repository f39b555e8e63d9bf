package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/catalog"
)

// ProductsHandler handles the events of the Products view.
type ProductsHandler struct {
	deps Dependencies
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(deps Dependencies) *ProductsHandler {
	return &ProductsHandler{deps: deps}
}

// LearnMorePost is the target of every card's Learn More button. It has no
// effect.
func (h *ProductsHandler) LearnMorePost(c echo.Context) error {
	catalog.LearnMore(catalog.Product{Name: c.FormValue("product")})
	h.deps.Metrics.InertActions.WithLabelValues("learn_more").Inc()
	return c.NoContent(http.StatusNoContent)
}
