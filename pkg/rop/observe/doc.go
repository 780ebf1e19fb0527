// Package observe defines the hooks a simmer run reports to and two
// implementations of them: structured logging with zerolog and Prometheus
// metrics.
//
// Observers are notified synchronously from the goroutine executing the run,
// in step order. They must not block for long and must be safe for use by
// concurrent runs.
//
// # Usage
//
//	log := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	m, err := observe.NewMetrics(observe.MetricsConfig{Namespace: "profiles"})
//	obs := observe.Multi(observe.NewLogger(log), m)
//	d := simmer.Run(ctx, normalize, input, simmer.WithObserver(obs))
package observe
