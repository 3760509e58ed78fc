package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// RequestLogger returns an echo middleware that logs each request
// through logger.
func RequestLogger(logger linuxsim.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()
			logger.Verbose("%s %s -> %d (%dms, %d bytes, %s)",
				req.Method,
				req.URL.Path,
				res.Status,
				time.Since(start).Milliseconds(),
				res.Size,
				c.RealIP(),
			)
			return err
		}
	}
}
