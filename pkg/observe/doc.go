// Package observe provides vdom.Observer implementations: an in-memory
// Recorder with live subscriptions, Prometheus metrics, OpenTelemetry
// tracing, and Multi to combine them.
//
//	rec := observe.NewRecorder(1000)
//	m := observe.NewMetrics(observe.WithRegistry(reg))
//	r := vdom.NewRenderer(doc, vdom.WithObserver(observe.Multi(rec, m, observe.NewTracing())))
package observe
