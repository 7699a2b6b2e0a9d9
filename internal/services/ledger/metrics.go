package ledger

import "github.com/shopspring/decimal"

// MetricsCollector receives ledger mutation outcomes.
type MetricsCollector interface {
	RecordMutation(operation string, amount decimal.Decimal)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordMutation(string, decimal.Decimal) {}
func (n *NoopMetricsCollector) RecordError(string, string)            {}
