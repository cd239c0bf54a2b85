package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/accessor"
	"github.com/charlie0129/battinfo/pkg/channel"
	"github.com/charlie0129/battinfo/pkg/config"
	"github.com/charlie0129/battinfo/pkg/source"
	"github.com/charlie0129/battinfo/pkg/utils/osver"
)

// Server serves an accessor over HTTP.
type Server struct {
	acc      *accessor.Accessor
	channel  *channel.Handler
	conf     config.Config
	registry *prometheus.Registry
}

// NewServer returns a Server for acc.
func NewServer(acc *accessor.Accessor, conf config.Config) *Server {
	s := &Server{
		acc:     acc,
		channel: channel.NewHandler(acc, osver.Platform),
		conf:    conf,
	}

	if conf.Metrics() {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(NewCollector(acc))
	}

	return s
}

// Router returns the HTTP handler of s.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/level", s.getLevel)
	router.GET("/charging", s.getCharging)
	router.GET("/state", s.getState)
	router.GET("/snapshot", s.getSnapshot)
	router.GET("/battery-info", s.getBatteryInfo)
	router.POST("/channel/:method", s.callMethod)
	router.GET("/config", s.getConfig)
	router.GET("/version", getVersion)
	if s.registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	return router
}

func Run(configPath string, unixSocketPath string, allowNonRoot bool) error {
	conf, err := config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	src, err := source.New(conf.Source())
	if err != nil {
		return err
	}
	logrus.Infof("reading battery from %s source", src.Name())

	srv := &http.Server{
		Handler: NewServer(accessor.New(src), conf).Router(),
	}

	// Receive SIGHUP to reload config. The source is chosen at startup only.
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			err := conf.Load()
			if err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.WithFields(conf.LogrusFields()).Infof("config reloaded")
		}
	}()

	// Remove a stale socket left behind by a crashed daemon.
	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("failed to remove stale socket %s: %v", unixSocketPath, err)
	}

	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	if conf.AllowNonRootAccess() || allowNonRoot {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", unixSocketPath)
		err = os.Chmod(unixSocketPath, 0777)
		if err != nil {
			logrus.Fatal(err)
		}
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	// Wait for a SIGINT or SIGTERM:
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	if err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	if c, ok := src.(interface{ Close() error }); ok {
		logrus.Info("closing source")
		if err := c.Close(); err != nil {
			logrus.Errorf("failed to close source: %v", err)
		}
	}

	logrus.Info("exiting")
	return nil
}
