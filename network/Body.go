// Package network describes the neural network bodies declared by
// experiment specifications. A body is a description only: the layer
// layout can be validated and its shapes and parameter counts
// inferred, but no network is ever constructed.
package network

import (
	"fmt"

	"github.com/samuelfneumann/expspec/validate"
)

// LayerType describes the type of a single network layer
type LayerType string

// Available layer types
const (
	Linear      LayerType = "linear"
	NoisyLinear LayerType = "noisy_linear"
	Flatten     LayerType = "flatten"
)

// LayerTypes returns all available layer types
func LayerTypes() []LayerType {
	return []LayerType{Linear, NoisyLinear, Flatten}
}

// Normalization describes the normalization applied after a layer
type Normalization string

// Available normalization types
const (
	None  Normalization = "none"
	Layer Normalization = "layer"
	Batch Normalization = "batch"
)

// Input describes the input widths of a network body. Primary is the
// width of the state observation input. Secondary is the width of an
// auxiliary input, such as the action input of a critic network,
// which is concatenated onto the activations entering the action
// layer.
type Input struct {
	Primary   int `yaml:"primary"`
	Secondary int `yaml:"secondary,omitempty"`
}

// LayerConfig describes a single layer of a network body
type LayerConfig struct {
	Type          LayerType     `yaml:"layer_type"`
	OutDim        int           `yaml:"out_dim"`
	Activation    Activation    `yaml:"activation,omitempty"`
	Normalization Normalization `yaml:"normalization,omitempty"`
	Dropout       float64       `yaml:"dropout,omitempty"`
}

// Body describes the layer layout of a neural network body
type Body struct {
	Input  Input         `yaml:"input"`
	Layers []LayerConfig `yaml:"layers"`

	// ActionLayer is the index of the layer whose input has the
	// secondary input concatenated onto it. Nil when the body takes no
	// secondary input.
	ActionLayer *int `yaml:"action_layer,omitempty"`

	// OutputDim overrides the inferred output width when positive
	OutputDim int `yaml:"output_dim,omitempty"`
}

// Shape describes the input and output widths of a single layer
type Shape struct {
	In  int
	Out int
}

// ApplyDefaults fills unset layer fields with their default values
func (b *Body) ApplyDefaults() {
	for i := range b.Layers {
		if b.Layers[i].Activation == "" {
			b.Layers[i].Activation = Identity
		}
		if b.Layers[i].Normalization == "" {
			b.Layers[i].Normalization = None
		}
	}
}

// Validate checks the Body to ensure it describes a network that
// could be constructed
func (b Body) Validate() error {
	v := validate.New()

	v.Positive("input.primary", b.Input.Primary)
	v.NonNegative("input.secondary", b.Input.Secondary)

	if len(b.Layers) == 0 {
		v.AddError("layers", "at least one layer is required", nil)
	}

	for i, layer := range b.Layers {
		field := fmt.Sprintf("layers[%d]", i)

		if !validLayerType(layer.Type) {
			v.AddError(field+".layer_type",
				fmt.Sprintf("layer type must be one of %v, got %q",
					LayerTypes(), layer.Type),
				string(layer.Type))
		}
		v.Positive(field+".out_dim", layer.OutDim)
		if layer.Activation != "" && !layer.Activation.valid() {
			v.AddError(field+".activation",
				fmt.Sprintf("activation must be one of %v, got %q",
					Activations(), layer.Activation),
				string(layer.Activation))
		}
		if layer.Normalization != "" && !validNormalization(layer.Normalization) {
			v.AddError(field+".normalization",
				fmt.Sprintf("normalization must be one of [%v %v %v], got %q",
					None, Layer, Batch, layer.Normalization),
				string(layer.Normalization))
		}
		if !(layer.Dropout >= 0 && layer.Dropout < 1) {
			v.AddError(field+".dropout",
				fmt.Sprintf("dropout must be in [0, 1), got %v", layer.Dropout),
				layer.Dropout)
		}
	}

	if b.ActionLayer != nil {
		if *b.ActionLayer < 0 || *b.ActionLayer >= len(b.Layers) {
			v.AddError("action_layer",
				fmt.Sprintf("layer index must be between 0 and %d, got %d",
					len(b.Layers)-1, *b.ActionLayer),
				*b.ActionLayer)
		}
		if b.Input.Secondary <= 0 {
			v.AddError("action_layer",
				"an action layer requires a positive secondary input width",
				*b.ActionLayer)
		}
	} else if b.Input.Secondary > 0 {
		v.AddError("input.secondary",
			"a secondary input is set but no action_layer consumes it",
			b.Input.Secondary)
	}

	v.NonNegative("output_dim", b.OutputDim)

	// Only run shape inference once the structural checks passed,
	// since inference assumes in-range indices and positive widths.
	if v.IsValid() {
		if _, err := b.ForwardShapes(); err != nil {
			v.AddError("layers", err.Error(), nil)
		}
	}

	return v.Err()
}

// ForwardShapes infers the input and output width of every layer in
// the body, accounting for the secondary input concatenated at the
// action layer. ForwardShapes assumes the structure of the Body is
// valid apart from the width consistency it checks itself.
func (b Body) ForwardShapes() ([]Shape, error) {
	if len(b.Layers) == 0 {
		return nil, fmt.Errorf("forwardShapes: body has no layers")
	}

	in := b.Input.Primary
	shapes := make([]Shape, len(b.Layers))
	for i, layer := range b.Layers {
		if b.ActionLayer != nil && *b.ActionLayer == i {
			in += b.Input.Secondary
		}
		if layer.Type == Flatten && layer.OutDim != in {
			return nil, fmt.Errorf("forwardShapes: flatten layer %d must "+
				"preserve its input width \n\twant(%v) \n\thave(%v)", i, in,
				layer.OutDim)
		}
		shapes[i] = Shape{In: in, Out: layer.OutDim}
		in = layer.OutDim
	}
	return shapes, nil
}

// ParameterCount returns the number of learnable parameters declared
// by the body: the weights and biases of each linear layer, doubled
// for noisy layers which carry a second set of noise scale
// parameters, plus the scale and shift parameters of any layer or
// batch normalization.
func (b Body) ParameterCount() (int, error) {
	shapes, err := b.ForwardShapes()
	if err != nil {
		return 0, err
	}

	total := 0
	for i, layer := range b.Layers {
		shape := shapes[i]
		switch layer.Type {
		case Linear:
			total += shape.In*shape.Out + shape.Out
		case NoisyLinear:
			total += 2 * (shape.In*shape.Out + shape.Out)
		case Flatten:
			// No learnable parameters
		}
		if layer.Normalization == Layer || layer.Normalization == Batch {
			total += 2 * shape.Out
		}
	}
	return total, nil
}

// OutputWidth returns the width of the body output: the explicit
// output_dim override when present, otherwise the out_dim of the
// final layer.
func (b Body) OutputWidth() int {
	if b.OutputDim > 0 {
		return b.OutputDim
	}
	if len(b.Layers) == 0 {
		return 0
	}
	return b.Layers[len(b.Layers)-1].OutDim
}

func validLayerType(t LayerType) bool {
	for _, known := range LayerTypes() {
		if t == known {
			return true
		}
	}
	return false
}

func validNormalization(n Normalization) bool {
	return n == None || n == Layer || n == Batch
}
