package mesh

// AccessorConfig describes where an accessor's entries live in its buffer.
type AccessorConfig struct {
	ByteOffset int
	// Stride is the distance between entries in bytes. Zero means tightly
	// packed.
	Stride int
}

// AccessorOption mutates an AccessorConfig.
type AccessorOption func(*AccessorConfig)

// WithByteOffset sets the position of the first entry.
func WithByteOffset(offset int) AccessorOption {
	return func(cfg *AccessorConfig) {
		cfg.ByteOffset = offset
	}
}

// WithStride sets the distance between consecutive entries.
func WithStride(stride int) AccessorOption {
	return func(cfg *AccessorConfig) {
		cfg.Stride = stride
	}
}

// ApplyAccessorOptions applies zero or more options to the zero config.
func ApplyAccessorOptions(opts ...AccessorOption) AccessorConfig {
	var cfg AccessorConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
