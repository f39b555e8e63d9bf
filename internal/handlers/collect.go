package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/collect"
	"github.com/nfrund/gopang/internal/middleware"
)

// draftFields are the form fields DraftPost reads, in application order.
var draftFields = []string{collect.FieldFoodType, collect.FieldWeight}

// CollectHandler handles the events of the Collect view.
type CollectHandler struct {
	deps Dependencies
}

// NewCollectHandler creates a new CollectHandler.
func NewCollectHandler(deps Dependencies) *CollectHandler {
	return &CollectHandler{deps: deps}
}

// DraftPost applies every posted draft field to the draft. The form posts
// all of its fields with every change, so a session that lost its state is
// rebuilt from the browser's values. The browser keeps the input values
// itself, so the response has no body.
func (h *CollectHandler) DraftPost(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	var updates []DraftFieldRequest
	for _, field := range draftFields {
		values, ok := params[field]
		if !ok || len(values) == 0 {
			continue
		}
		req := DraftFieldRequest{Field: field, Value: values[0]}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		updates = append(updates, req)
	}

	sess, err := middleware.UISession(c)
	if err != nil {
		return err
	}

	sess.Do(func(s *app.State) {
		if len(updates) > 0 && s.MountCollect() {
			middleware.FromContext(c.Request().Context()).Info("remounted collect view for draft update", "session_id", sess.ID)
		}
		for _, u := range updates {
			if s.UpdateDraft(u.Field, u.Value) {
				h.deps.Metrics.DraftUpdates.WithLabelValues(u.Field).Inc()
			}
		}
	})
	return c.NoContent(http.StatusNoContent)
}

// SubmitPost hands the draft to collect.Submit. Neither the draft nor the
// current view changes.
func (h *CollectHandler) SubmitPost(c echo.Context) error {
	sess, err := middleware.UISession(c)
	if err != nil {
		return err
	}
	sess.Do(func(s *app.State) { s.Submit() })
	h.deps.Metrics.InertActions.WithLabelValues("submit").Inc()
	return c.NoContent(http.StatusNoContent)
}
