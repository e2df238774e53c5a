package bikeshareinsights

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var server *http.Server

// NewRouter builds the gin engine with the API routes. CORS is wide open:
// the dashboard frontend is served from a different origin.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(cors.Default())

	api := r.Group("/api")
	api.GET("/health", h.GetHealth)

	t := api.Group("/trips")
	t.GET("/stats", h.GetTripStats)
	t.GET("/months", h.GetMonths)
	t.GET("/routes", h.GetRoutes)

	s := api.Group("/stations")
	s.GET("", h.GetStations)
	s.GET("/stats", h.GetSystemStats)

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Debug("request")
	}
}

// StartServer runs the HTTP server in the background.
func StartServer(port int, handler http.Handler) {
	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Infof("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("server shutdown error: %v", err)
		} else {
			log.Info("server shut down successfully")
		}
	}
}
