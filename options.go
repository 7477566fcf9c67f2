package glbatch

import (
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/transport"
)

// Option configures a Builder during creation.
//
// Example:
//
//	// Record into memory, e.g. for tests
//	mem := transport.NewMemory()
//	b := glbatch.NewBuilder(glbatch.WithTransport(mem))
//
//	// Share handles with another builder in the same session
//	b2 := glbatch.NewBuilder(glbatch.WithRegistry(b.Registry()))
type Option func(*options)

type options struct {
	transport  transport.Transport
	registry   *resource.Registry
	updateInfo bool
	capacity   int
}

func defaultOptions() options {
	return options{
		updateInfo: true,
		capacity:   64,
	}
}

// WithTransport sets the transport Dispatch sends batches to. Without it
// the builder uses DefaultTransport at creation time.
func WithTransport(t transport.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithRegistry makes the builder allocate handles from r. Builders that
// address the same executor session must share one registry.
func WithRegistry(r *resource.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithUpdateInfo sets the update_info flag of bufferData records, which
// asks the executor to refresh its resource summary. Default true.
func WithUpdateInfo(enabled bool) Option {
	return func(o *options) {
		o.updateInfo = enabled
	}
}

// WithCapacity preallocates room for n commands.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
