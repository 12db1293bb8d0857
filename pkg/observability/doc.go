// Package observability turns registry events into Prometheus metrics.
//
//	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
//	if err != nil {
//	    return err
//	}
//	m, err := machine.New(machine.Symbols("01"), machine.WithHooks(metrics.Hooks()))
package observability
