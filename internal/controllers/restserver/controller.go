package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/yeswatch/internal/log"
	"github.com/chrissnell/yeswatch/pkg/config"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	restConfig     config.RESTServerData
	Server         http.Server
	clock          localtime.Clock
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		clock:          localtime.SystemClock,
		logger:         logger,
	}

	rc, err := configProvider.GetRESTServerConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading REST server configuration: %v", err)
	}
	ctrl.restConfig = *rc

	// If a ListenAddr was not provided, listen on all interfaces
	if ctrl.restConfig.ListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.restConfig.ListenAddr = config.DefaultListenAddr
	}

	// Set default HTTP port if not specified
	if ctrl.restConfig.HTTPPort == 0 {
		logger.Infof("rest.http_port not provided; defaulting to %d", config.DefaultHTTPPort)
		ctrl.restConfig.HTTPPort = config.DefaultHTTPPort
	}

	locations, err := configProvider.GetLocations()
	if err != nil {
		return nil, fmt.Errorf("error loading locations: %v", err)
	}
	if len(locations) == 0 {
		logger.Info("no locations configured; only /sun is useful")
	}

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.restConfig.ListenAddr, ctrl.restConfig.HTTPPort)
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// SetClock replaces the wall clock used for "now" lookups
func (c *Controller) SetClock(clock localtime.Clock) {
	c.clock = clock
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	c.logger.Infof("Starting REST server on %s", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		c.logger.Info("Shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(log.HTTPMiddleware)

	router.HandleFunc("/sun", c.handlers.GetSun).Methods(http.MethodGet)
	router.HandleFunc("/locations", c.handlers.GetLocations).Methods(http.MethodGet)
	router.HandleFunc("/locations/{name}/sun", c.handlers.GetLocationSun).Methods(http.MethodGet)
	router.HandleFunc("/locations/{name}/now", c.handlers.GetLocationNow).Methods(http.MethodGet)

	return router
}
