package gin

import (
	"log/slog"
	"strconv"
	"time"

	ginslog "github.com/FabienMht/ginslog/logger"
	ginslogrecovery "github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the request and response header which carries
// the request identifier.
const RequestIDHeader = "X-Request-ID"

// New creates a gin engine in the release mode, using the given
// middlewares. Handlers may pass the *gin.Context as a context.Context
// to use cases because it falls back to the request context.
func New(middlewares ...HandlerFunc) *Engine {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// Logger logs each request using the default slog logger.
func Logger() HandlerFunc {
	return ginslog.New(slog.Default())
}

// Recovery converts panics to 500 responses and logs them using the
// default slog logger.
func Recovery() HandlerFunc {
	return ginslogrecovery.New(slog.Default())
}

// RequestID takes a UUID request identifier from the X-Request-ID
// header or generates a fresh one, and echoes it in the response.
// The id is kept in the request context, so records which are logged
// by the handlers (through the log package) carry it.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(
			log.WithRequestID(c.Request.Context(), id),
		)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Metrics records the count and duration of handled requests.
// Requests which match no route are labeled as "unmatched", keeping
// the route label cardinality bounded.
func Metrics(m *observability.Metrics) HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(
			time.Since(start).Seconds(),
		)
	}
}
