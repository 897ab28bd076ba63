package monitor

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/shad0w-jo4n/libcpp-gc/gc"
	"github.com/shad0w-jo4n/libcpp-gc/internal/observability"
)

// Server exposes one collector's state over HTTP while a workload runs.
type Server struct {
	ID        string
	Addr      string
	Collector *gc.Collector
	Appeared  time.Time

	router *gin.Engine
}

func Appear(id, addr string, corsOrigins []string, collector *gc.Collector) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(id))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(corsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	return &Server{
		ID:        id,
		Addr:      addr,
		Collector: collector,
		Appeared:  time.Now(),
		router:    r,
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": "0.0.1",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/status", func(c *gin.Context) {
		stats := s.Collector.Stats()
		c.JSON(http.StatusOK, gin.H{
			"service":  s.ID,
			"interval": s.Collector.Interval().String(),
			"stats":    stats,
		})
	})

	s.router.POST("/collect", func(c *gin.Context) {
		reclaimed := s.Collector.Collect()
		log.Info().
			Str("service", s.ID).
			Int("reclaimed", reclaimed).
			Msg("manual sweep executed")
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"reclaimed": reclaimed,
			"stats":     s.Collector.Stats(),
		})
	})
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		out = append(out, origin)
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}
