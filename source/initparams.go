package source

// InitParams is the capability a host runtime supplies to expose its
// initialization parameters: a lookup by name plus an enumeration of the
// parameter names. It decouples the adapter from any specific host API.
type InitParams interface {
	InitParameter(name string) (string, bool)
	InitParameterNames() []string
}

// InitParamsSource adapts a host's initialization parameters to the Source
// interface. The source is read only; adding or removing a property fails
// with ErrReadOnly.
type InitParamsSource struct {
	params  InitParams
	options Options
}

// NewInitParamsSource creates a source over the supplied parameters. A nil
// options applies DefaultOptions.
func NewInitParamsSource(params InitParams, options *Options) *InitParamsSource {
	if options == nil {
		options = DefaultOptions()
	}
	return &InitParamsSource{params: params, options: *options}
}

// Get returns the parameter value. A value containing the configured
// delimiter is split into an ordered list unless delimiter parsing is
// disabled.
func (s *InitParamsSource) Get(key string) (any, bool) {
	value, ok := s.params.InitParameter(key)
	if !ok {
		return nil, false
	}
	return splitValue(value, &s.options), true
}

// Keys enumerates the parameter names as reported by the host.
func (s *InitParamsSource) Keys() []string {
	return s.params.InitParameterNames()
}

// Set always fails: the source is read-only.
func (s *InitParamsSource) Set(key string, value any) error {
	return ErrReadOnly
}

// Clear always fails: the source is read-only.
func (s *InitParamsSource) Clear() error {
	return ErrReadOnly
}
