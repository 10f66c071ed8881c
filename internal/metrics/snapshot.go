package metrics

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricPrefix selects this program's families out of a shared registry.
const MetricPrefix = "user_summary_"

// Snapshot sums every series of each user_summary_ family in g.
// Counters and gauges contribute their value, histograms their sample count.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), MetricPrefix) {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		totals[mf.GetName()] = total
	}
	return totals, nil
}

// LogSnapshot writes one debug record per family, sorted by name.
func LogSnapshot(log *slog.Logger, g prometheus.Gatherer) {
	totals, err := Snapshot(g)
	if err != nil {
		log.Warn("Failed to gather metrics", "error", err)
		return
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		log.Debug("Metric", "name", name, "value", totals[name])
	}
}
