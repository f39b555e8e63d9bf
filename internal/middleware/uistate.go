package middleware

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/gopang/internal/app"
	"github.com/nfrund/gopang/internal/domain"
)

const (
	// UISessionContextKey holds the *app.Session of the current request.
	UISessionContextKey = "ui_session"

	uiCookieName = "gopang-ui"
	sessionIDKey = "sid"
)

// UIState resolves the browser's UI session. The cookie only carries an
// identifier; the state itself stays in store. It must run after the
// gorilla session middleware.
func UIState(store *app.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(uiCookieName, c)
			if err != nil {
				// A cookie signed with an old secret still yields a fresh session.
				FromContext(c.Request().Context()).Warn("discarding unreadable ui session cookie", "error", err)
			}
			if sess == nil {
				return fmt.Errorf("%w: %v", domain.ErrNoSession, err)
			}

			id, _ := sess.Values[sessionIDKey].(string)
			if id == "" {
				id = store.NewID()
				sess.Values[sessionIDKey] = id
			}
			// Re-issued on every request so the cookie expires with the
			// server-side state, STATE_TTL after the last event.
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrNoSession, err)
			}

			c.Set(UISessionContextKey, store.Load(id))
			return next(c)
		}
	}
}

// UISession returns the session resolved by UIState.
func UISession(c echo.Context) (*app.Session, error) {
	sess, ok := c.Get(UISessionContextKey).(*app.Session)
	if !ok || sess == nil {
		return nil, domain.ErrNoSession
	}
	return sess, nil
}
