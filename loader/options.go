package loader

// Option configures LoadOSM.
type Option func(*Options)

// Options holds OSM import parameters.
type Options struct {
	// Highways, when non-empty, keeps only ways whose highway tag is listed.
	Highways map[string]struct{}

	// Procs is the number of PBF decoding goroutines.
	Procs int
}

// DefaultOptions keeps every highway and decodes PBF with 4 goroutines.
func DefaultOptions() Options {
	return Options{Procs: 4}
}

// WithHighways restricts import to the given highway tag values
// (e.g. "primary", "residential").
func WithHighways(types ...string) Option {
	return func(o *Options) {
		if len(types) == 0 {
			return
		}
		o.Highways = make(map[string]struct{}, len(types))
		for _, t := range types {
			o.Highways[t] = struct{}{}
		}
	}
}

// WithProcs sets PBF decoding parallelism; values below 1 are ignored.
func WithProcs(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Procs = n
		}
	}
}

func (o Options) keep(highway string) bool {
	if highway == "" {
		return false
	}
	if len(o.Highways) == 0 {
		return true
	}
	_, ok := o.Highways[highway]
	return ok
}
