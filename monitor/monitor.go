package monitor

import "sync"

var (
	registry []Collector
	rl       sync.RWMutex
)

// Register adds collectors to the process-wide registry.
func Register(collector ...Collector) {
	rl.Lock()
	defer rl.Unlock()

	registry = append(registry, collector...)
}

// Collect gathers one sample from every registered collector.
func Collect() []MetricData {
	rl.RLock()
	defer rl.RUnlock()

	metrics := make([]MetricData, 0, len(registry))
	for _, collector := range registry {
		metrics = append(metrics, collector.Monitor()...)
	}
	return metrics
}

type Collector interface {
	Monitor() []MetricData
}

type Type string

const (
	Counter Type = "Counter"
	Gauge   Type = "Gauge"
)

type MetricData struct {
	Type   Type
	Metric string
	Labels map[string]string
	Data   float64
}

func NewGaugeMetricData(metric string, labels map[string]string, data float64) MetricData {
	return MetricData{Type: Gauge, Metric: metric, Labels: labels, Data: data}
}
func NewCounterMetricData(metric string, labels map[string]string, data float64) MetricData {
	return MetricData{Type: Counter, Metric: metric, Labels: labels, Data: data}
}
