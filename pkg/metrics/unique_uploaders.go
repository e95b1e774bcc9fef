package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type uniqueUploaders struct {
	counter       prometheus.Gauge
	uploaderCache map[string]struct{}
	mu            sync.RWMutex
}

const uploaderCountPerWeek = "uploaders_count_per_week"

var totalUniqueUploadersPerWeekMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: savvy,
		Name:      uploaderCountPerWeek,
		Help:      "metrics to record the number of distinct users uploading assumptions per week",
	},
)

var UniqueUploadersPerWeek = &uniqueUploaders{
	counter:       totalUniqueUploadersPerWeekMetric,
	uploaderCache: make(map[string]struct{}),
}

func (v *uniqueUploaders) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.uploaderCache = make(map[string]struct{})
	v.counter.Set(0)
}

func (v *uniqueUploaders) Add(user string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.uploaderCache[user]; exists {
		return
	}

	v.uploaderCache[user] = struct{}{}
	v.counter.Inc()
}

func (v *uniqueUploaders) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.uploaderCache)
}
