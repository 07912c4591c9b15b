package environment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r1"
)

// Environment identifiers known to the catalog
const (
	CartPoleV0              string = "CartPole-v0"
	CartPoleV1              string = "CartPole-v1"
	MountainCarV0           string = "MountainCar-v0"
	MountainCarContinuousV0 string = "MountainCarContinuous-v0"
	PendulumV1              string = "Pendulum-v1"
	AcrobotV1               string = "Acrobot-v1"
	LunarLanderV2           string = "LunarLander-v2"
	LunarLanderContinuousV2 string = "LunarLanderContinuous-v2"
)

// Bounds (+/-) on state variables of the classic control environments
const (
	cartPositionBound  float64 = 4.8
	poleAngleBound     float64 = 24.0 * 2.0 * math.Pi / 360.0
	pendulumSpeedBound float64 = 8.0
	acrobotSpeed1Bound float64 = 4.0 * math.Pi
	acrobotSpeed2Bound float64 = 9.0 * math.Pi
	mountainCarMinPos  float64 = -1.2
	mountainCarMaxPos  float64 = 0.6
	mountainCarSpeed   float64 = 0.07
	pendulumMaxTorque  float64 = 2.0
	pendulumMinReward  float64 = -16.2736044
	unbounded          float64 = math.MaxFloat64
)

var catalog map[string]Spec

func init() {
	catalog = make(map[string]Spec)
	for _, spec := range []Spec{
		cartPole(CartPoleV0, 200),
		cartPole(CartPoleV1, 500),
		mountainCar(),
		mountainCarContinuous(),
		pendulum(),
		acrobot(),
		lunarLander(),
		lunarLanderContinuous(),
	} {
		catalog[spec.ID] = spec
	}
}

// Lookup returns the specification of the environment with the given
// identifier. The second return value reports whether the environment
// is known to the catalog.
func Lookup(id string) (Spec, bool) {
	spec, ok := catalog[id]
	return spec, ok
}

// IDs returns the identifiers of every environment in the catalog in
// lexicographic order
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// symmetric returns the interval [-bound, bound]
func symmetric(bound float64) r1.Interval {
	return r1.Interval{Min: -bound, Max: bound}
}

func cartPole(id string, maxSteps int) Spec {
	return Spec{
		ID:             id,
		ObservationDim: 4,
		ObservationBounds: []r1.Interval{
			symmetric(cartPositionBound),
			symmetric(unbounded),
			symmetric(poleAngleBound),
			symmetric(unbounded),
		},
		ActionCardinality: Discrete,
		NumActions:        2,
		RewardRange:       r1.Interval{Min: 0.0, Max: 1.0},
		MaxEpisodeSteps:   maxSteps,
	}
}

func mountainCar() Spec {
	return Spec{
		ID:             MountainCarV0,
		ObservationDim: 2,
		ObservationBounds: []r1.Interval{
			{Min: mountainCarMinPos, Max: mountainCarMaxPos},
			symmetric(mountainCarSpeed),
		},
		ActionCardinality: Discrete,
		NumActions:        3,
		RewardRange:       r1.Interval{Min: -1.0, Max: 0.0},
		MaxEpisodeSteps:   200,
	}
}

func mountainCarContinuous() Spec {
	return Spec{
		ID:             MountainCarContinuousV0,
		ObservationDim: 2,
		ObservationBounds: []r1.Interval{
			{Min: mountainCarMinPos, Max: mountainCarMaxPos},
			symmetric(mountainCarSpeed),
		},
		ActionCardinality: Continuous,
		ActionDim:         1,
		ActionBounds:      symmetric(1.0),
		RewardRange:       r1.Interval{Min: -0.1, Max: 100.0},
		MaxEpisodeSteps:   999,
	}
}

func pendulum() Spec {
	return Spec{
		ID:             PendulumV1,
		ObservationDim: 3,
		ObservationBounds: []r1.Interval{
			symmetric(1.0),
			symmetric(1.0),
			symmetric(pendulumSpeedBound),
		},
		ActionCardinality: Continuous,
		ActionDim:         1,
		ActionBounds:      symmetric(pendulumMaxTorque),
		RewardRange:       r1.Interval{Min: pendulumMinReward, Max: 0.0},
		MaxEpisodeSteps:   200,
	}
}

func acrobot() Spec {
	return Spec{
		ID:             AcrobotV1,
		ObservationDim: 6,
		ObservationBounds: []r1.Interval{
			symmetric(1.0),
			symmetric(1.0),
			symmetric(1.0),
			symmetric(1.0),
			symmetric(acrobotSpeed1Bound),
			symmetric(acrobotSpeed2Bound),
		},
		ActionCardinality: Discrete,
		NumActions:        3,
		RewardRange:       r1.Interval{Min: -1.0, Max: 0.0},
		MaxEpisodeSteps:   500,
	}
}

func lunarLander() Spec {
	return Spec{
		ID:                LunarLanderV2,
		ObservationDim:    8,
		ObservationBounds: unboundedObservations(8),
		ActionCardinality: Discrete,
		NumActions:        4,
		RewardRange:       symmetric(unbounded),
		MaxEpisodeSteps:   1000,
	}
}

func lunarLanderContinuous() Spec {
	return Spec{
		ID:                LunarLanderContinuousV2,
		ObservationDim:    8,
		ObservationBounds: unboundedObservations(8),
		ActionCardinality: Continuous,
		ActionDim:         2,
		ActionBounds:      symmetric(1.0),
		RewardRange:       symmetric(unbounded),
		MaxEpisodeSteps:   1000,
	}
}

func unboundedObservations(dim int) []r1.Interval {
	bounds := make([]r1.Interval, dim)
	for i := range bounds {
		bounds[i] = symmetric(unbounded)
	}
	return bounds
}
