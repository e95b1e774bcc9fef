package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/solarbi/savvy-planner/internal/store/model"
)

type statisticsSource interface {
	Statistics(ctx context.Context) (model.Statistics, error)
}

type storeStatsCollector struct {
	store                 statisticsSource
	totalAssumptions      *prometheus.Desc
	assumptionsByStatus   *prometheus.Desc
	totalAssumptionValues *prometheus.Desc
	totalSimulations      *prometheus.Desc
	totalLogs             *prometheus.Desc
}

// RegisterStoreCollector exposes row counts read from the store on every scrape.
func RegisterStoreCollector(s statisticsSource) error {
	return prometheus.Register(newStoreStatsCollector(s))
}

func newStoreStatsCollector(s statisticsSource) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_store_%s", savvy, name)
	}

	return &storeStatsCollector{
		store: s,
		totalAssumptions: prometheus.NewDesc(
			fqName("assumptions_total"),
			"Total number of assumption jobs.",
			nil,
			prometheus.Labels{},
		),
		assumptionsByStatus: prometheus.NewDesc(
			fqName("assumptions_by_status_total"),
			"Assumption jobs by status.",
			[]string{"status"},
			prometheus.Labels{},
		),
		totalAssumptionValues: prometheus.NewDesc(
			fqName("assumption_values_total"),
			"Total number of parsed assumption values.",
			nil,
			prometheus.Labels{},
		),
		totalSimulations: prometheus.NewDesc(
			fqName("simulations_total"),
			"Total number of simulation jobs.",
			nil,
			prometheus.Labels{},
		),
		totalLogs: prometheus.NewDesc(
			fqName("simulation_logs_total"),
			"Total number of audit log entries.",
			nil,
			prometheus.Labels{},
		),
	}
}

func (c *storeStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalAssumptions
	ch <- c.assumptionsByStatus
	ch <- c.totalAssumptionValues
	ch <- c.totalSimulations
	ch <- c.totalLogs
}

// Collect implements Collector.
func (c *storeStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("store_collector").Errorf("failed to collect store statistics: %s", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.totalAssumptions, prometheus.GaugeValue, float64(stats.Assumptions.Total))
	ch <- prometheus.MustNewConstMetric(c.totalAssumptionValues, prometheus.GaugeValue, float64(stats.TotalValues))
	ch <- prometheus.MustNewConstMetric(c.totalSimulations, prometheus.GaugeValue, float64(stats.TotalSimulations))
	ch <- prometheus.MustNewConstMetric(c.totalLogs, prometheus.GaugeValue, float64(stats.TotalLogs))

	for status, total := range stats.Assumptions.ByStatus {
		ch <- prometheus.MustNewConstMetric(c.assumptionsByStatus, prometheus.GaugeValue, float64(total), status)
	}
}
