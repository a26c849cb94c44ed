package bulmaecho

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/logger"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = echo.HeaderXRequestID

// RequestID returns the id RequestLogger assigned to the request, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

// RequestLogger logs one line per request. Each request gets an id, taken
// from the X-Request-ID header when present, which is echoed back in the
// response and stored in the Echo context.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("request_id", id)
			c.Response().Header().Set(RequestIDHeader, id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let Echo write the error response so the logged status is final.
				c.Error(err)
			}

			fields := map[string]any{
				"request_id": id,
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     c.Response().Status,
				"bytes":      c.Response().Size,
				"duration":   time.Since(start).String(),
			}
			if bulma.IsHTMX(req) {
				fields["htmx"] = true
				if target := bulma.TargetID(req); target != "" {
					fields["hx_target"] = target
				}
			}
			l := log.WithFields(fields)
			switch {
			case err != nil:
				l.Error(err, "request failed")
			case c.Response().Status >= 500:
				l.Warn("request")
			default:
				l.Info("request")
			}
			return nil
		}
	}
}
