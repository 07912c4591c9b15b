package network

// Activation represents an activation function type
type Activation string

// Available activation types
const (
	ReLU     Activation = "relu"
	TanH     Activation = "tanh"
	Sigmoid  Activation = "sigmoid"
	Identity Activation = "identity"
)

// Activations returns all available activation types
func Activations() []Activation {
	return []Activation{ReLU, TanH, Sigmoid, Identity}
}

// String implements the Stringer interface
func (a Activation) String() string {
	return string(a)
}

// IsIdentity returns whether or not the Activation is the identity
// function.
func (a Activation) IsIdentity() bool {
	return a == Identity
}

// valid returns whether a is a known activation type
func (a Activation) valid() bool {
	for _, known := range Activations() {
		if a == known {
			return true
		}
	}
	return false
}
