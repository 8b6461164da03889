package region

// Default bounds applied by DefaultOptions.
const (
	DefaultMaxSeeds        = 100
	DefaultMaxRegions      = 4096
	DefaultMaxDepth        = 512
	DefaultMaxNookRetries  = 10
	DefaultMaxClaimRetries = 4
)

// Options configures region growth and tree construction.
type Options struct {
	// MaxSeeds caps the child seeds kept per region; extra seeds are dropped with a warning.
	MaxSeeds int

	// MaxRegions caps the total number of regions in a tree.
	MaxRegions int

	// MaxDepth caps how many levels below the root the tree may grow.
	MaxDepth int

	// MaxNookRetries bounds how often a seed is shifted to escape a nook.
	MaxNookRetries int

	// MaxClaimRetries bounds shrink re-runs after a lost claim race (parallel mode only).
	MaxClaimRetries int

	// RootOrder is the order assigned to the root region.
	RootOrder int

	// Workers enables level-parallel growth when > 1.
	Workers int
}

// Option mutates Options before a build.
type Option func(*Options)

// DefaultOptions returns the sequential, depth-first configuration.
func DefaultOptions() Options {
	return Options{
		MaxSeeds:        DefaultMaxSeeds,
		MaxRegions:      DefaultMaxRegions,
		MaxDepth:        DefaultMaxDepth,
		MaxNookRetries:  DefaultMaxNookRetries,
		MaxClaimRetries: DefaultMaxClaimRetries,
		RootOrder:       0,
		Workers:         1,
	}
}

// WithMaxSeeds sets the per-region child seed cap. Panics if n < 0.
func WithMaxSeeds(n int) Option {
	if n < 0 {
		panic("region: WithMaxSeeds(n) requires n >= 0")
	}
	return func(o *Options) { o.MaxSeeds = n }
}

// WithMaxRegions sets the total region budget. Panics if n < 1.
func WithMaxRegions(n int) Option {
	if n < 1 {
		panic("region: WithMaxRegions(n) requires n >= 1")
	}
	return func(o *Options) { o.MaxRegions = n }
}

// WithMaxDepth sets the depth budget below the root. Panics if n < 0.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("region: WithMaxDepth(n) requires n >= 0")
	}
	return func(o *Options) { o.MaxDepth = n }
}

// WithMaxNookRetries sets the nook escape budget. Panics if n < 0.
func WithMaxNookRetries(n int) Option {
	if n < 0 {
		panic("region: WithMaxNookRetries(n) requires n >= 0")
	}
	return func(o *Options) { o.MaxNookRetries = n }
}

// WithRootOrder sets the order of the root region.
func WithRootOrder(order int) Option {
	return func(o *Options) { o.RootOrder = order }
}

// WithParallel grows all seeds of one depth concurrently on up to workers
// goroutines. Geometry may differ from the sequential build.
// Panics if workers < 1; workers == 1 keeps the sequential build.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic("region: WithParallel(workers) requires workers >= 1")
	}
	return func(o *Options) { o.Workers = workers }
}
