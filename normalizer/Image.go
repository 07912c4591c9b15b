package normalizer

// ImageConfig implements a normalizer that rescales byte-valued
// pixel observations into [0, 1] by dividing by 255. It has no
// parameters.
type ImageConfig struct {
}

// NewImage returns a new pixel rescaling state normalizer
func NewImage() (*Normalizer, error) {
	config := ImageConfig{}

	return newNormalizer(&config)
}

// Type returns the type of normalizer the Config describes
func (i *ImageConfig) Type() Type {
	return Image
}

// ApplyDefaults fills unset parameters with their default values
func (i *ImageConfig) ApplyDefaults() {}

// Validate checks the parameters for consistency
func (i *ImageConfig) Validate() error {
	return nil
}

// Stateful returns whether the normalizer accumulates running
// statistics
func (i *ImageConfig) Stateful() bool {
	return false
}
