package stalled_parcels

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"parcelhub/pkg/logger"
)

var stalledParcelsGauge = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "stalled_parcels_count",
		Help: "Number of parcels stuck in an intermediate delivery status",
	},
)

type Service interface {
	CountStalledParcels(ctx context.Context, olderThan time.Duration) (int64, error)
}

type StalledParcels struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewStalledParcels(log logger.Logger, service Service, interval, maxAge time.Duration) *StalledParcels {
	return &StalledParcels{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (s *StalledParcels) TTL() time.Duration {
	return s.interval
}

// Do - read-only проход: посылки не трогаем, только считаем и сигналим.
func (s *StalledParcels) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	count, err := s.service.CountStalledParcels(ctxWithTimeout, s.maxAge)
	if err != nil {
		return err
	}

	stalledParcelsGauge.Set(float64(count))

	if count > 0 {
		s.log.With(
			logger.NewField("stalled_parcels", count),
			logger.NewField("older_than", s.maxAge.String()),
		).Warn("stalled parcels detected")
	}

	return nil
}

func (s *StalledParcels) Info() string {
	return "stalled parcels sweep"
}
