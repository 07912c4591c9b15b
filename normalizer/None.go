package normalizer

// NoneConfig implements a normalizer that passes observations
// through unchanged
type NoneConfig struct {
}

// NewNone returns a new pass-through state normalizer
func NewNone() (*Normalizer, error) {
	config := NoneConfig{}

	return newNormalizer(&config)
}

// Type returns the type of normalizer the Config describes
func (n *NoneConfig) Type() Type {
	return None
}

// ApplyDefaults fills unset parameters with their default values
func (n *NoneConfig) ApplyDefaults() {}

// Validate checks the parameters for consistency
func (n *NoneConfig) Validate() error {
	return nil
}

// Stateful returns whether the normalizer accumulates running
// statistics
func (n *NoneConfig) Stateful() bool {
	return false
}
