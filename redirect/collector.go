package redirect

import "github.com/kurosann/fdkit/monitor"

type redirectCollector struct{}

func (redirectCollector) Monitor() []monitor.MetricData {
	liveNow, beginTotal, endTotal := Stats()
	return []monitor.MetricData{
		monitor.NewGaugeMetricData("fd_redirect_active", nil, float64(liveNow)),
		monitor.NewCounterMetricData("fd_redirect_begin_total", nil, float64(beginTotal)),
		monitor.NewCounterMetricData("fd_redirect_end_total", nil, float64(endTotal)),
	}
}

// Collector reports redirection counters; register it with
// monitor.Register to include them in collection.
func Collector() monitor.Collector {
	return redirectCollector{}
}
