package inventory

import (
	"cmp"

	"github.com/GaurabK19/MSCS-532-A01-Project-Dynamic-Inventory-Management-Report/product"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// options defines all configuration options for the catalog.
type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer // nil disables metrics
}

// Option is a function that configures the catalog options.
type Option func(*options)

// WithLogger sets the logger used for the catalog's silent paths.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegisterer registers the catalog metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger:     zap.NewNop(),
		registerer: nil,
	}
}

// queueOptions defines the configuration of a PriorityQueue.
type queueOptions struct {
	tieBreak func(a, b *product.Product) int
}

// QueueOption is a function that configures a PriorityQueue.
type QueueOption func(*queueOptions)

// WithTieBreak orders products that share a priority. compare must return a
// negative number when a should be extracted before b.
func WithTieBreak(compare func(a, b *product.Product) int) QueueOption {
	return func(o *queueOptions) {
		o.tieBreak = compare
	}
}

func defaultQueueOptions() queueOptions {
	return queueOptions{
		tieBreak: byID,
	}
}

func byID(a, b *product.Product) int {
	return cmp.Compare(a.ID(), b.ID())
}
