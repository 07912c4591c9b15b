// Package memory describes the replay memory attached to an agent.
// Only the sizing and placement of the memory is modelled; the buffer
// holding transitions lives in the trainer consuming the
// specification.
package memory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelfneumann/expspec/validate"
)

// Device identifies the compute device backing the replay memory
type Device string

// Available devices. CUDA devices may carry an index, e.g. "cuda:1".
const (
	CPU  Device = "cpu"
	CUDA Device = "cuda"
)

// IsCUDA returns whether the device is a CUDA device
func (d Device) IsCUDA() bool {
	return d == CUDA || strings.HasPrefix(string(d), "cuda:")
}

// Index returns the index of a CUDA device, or 0 when the device
// carries no index. The second return value reports whether the
// device is valid.
func (d Device) Index() (int, bool) {
	switch {
	case d == CPU || d == CUDA:
		return 0, true
	case strings.HasPrefix(string(d), "cuda:"):
		index, err := strconv.Atoi(strings.TrimPrefix(string(d), "cuda:"))
		return index, err == nil && index >= 0
	}
	return 0, false
}

// Config describes a replay memory. When Combined is set, the most
// recent transition is always included in sampled batches.
type Config struct {
	Capacity     int    `yaml:"capacity"`
	Device       Device `yaml:"device,omitempty"`
	Combined     bool   `yaml:"combined,omitempty"`
	TorchBackend bool   `yaml:"torch_backend,omitempty"`
}

// ApplyDefaults fills unset fields with their default values
func (c *Config) ApplyDefaults() {
	if c.Device == "" {
		c.Device = CPU
	}
}

// Validate checks the Config to ensure it describes a replay memory
// that could be constructed
func (c Config) Validate() error {
	v := validate.New()

	v.Positive("capacity", c.Capacity)

	if _, ok := c.Device.Index(); !ok {
		v.AddError("device",
			fmt.Sprintf("device must be cpu, cuda, or cuda:N, got %q",
				c.Device),
			string(c.Device))
	}
	if c.Device.IsCUDA() && !c.TorchBackend {
		v.AddError("device",
			"a cuda device requires the torch backend", string(c.Device))
	}

	return v.Err()
}
