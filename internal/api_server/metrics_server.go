package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/pkg/metrics"
)

const uploadersResetInterval = 7 * 24 * time.Hour

type MetricServer struct {
	bindAddress string
	httpServer  *http.Server
	listener    net.Listener
}

func NewMetricServer(bindAddress string, listener net.Listener) *MetricServer {
	router := chi.NewRouter()

	prometheusMetricHandler := metrics.NewPrometheusMetricsHandler()
	router.Handle("/metrics", prometheusMetricHandler.Handler())

	s := &MetricServer{
		bindAddress: bindAddress,
		listener:    listener,
		httpServer: &http.Server{
			Addr:    bindAddress,
			Handler: router,
		},
	}

	return s
}

func (m *MetricServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		m.httpServer.SetKeepAlivesEnabled(false)
		_ = m.httpServer.Shutdown(ctxTimeout)
		zap.S().Named("metrics_server").Info("metrics server terminated")
	}()

	go resetUploaders(ctx, jitterbug.New(uploadersResetInterval, &jitterbug.Norm{Stdev: time.Minute}))

	zap.S().Named("metrics_server").Infof("serving metrics: %s", m.bindAddress)
	if err := m.httpServer.Serve(m.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// resetUploaders clears the weekly unique uploaders gauge on every tick until
// ctx is done.
func resetUploaders(ctx context.Context, ticker *jitterbug.Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			metrics.UniqueUploadersPerWeek.Reset()
			zap.S().Named("metrics_server").Info("weekly unique uploaders metric reset")
		case <-ctx.Done():
			return
		}
	}
}
