// Package prediction holds the trainable auxiliary scorer: a two-layer
// feed-forward network (linear, ReLU, linear, sigmoid) whose output is
// scaled to 0-100. The network is deliberately small; it backs the
// Predictor strategy interface so a real model can replace it without
// touching the orchestrator.
package prediction

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/propie/recommendation-engine/internal/domain/providers"
)

const (
	// learningRate and epochs govern Retrain's stochastic gradient
	// descent pass over the sample set.
	learningRate = 0.01
	epochs       = 100
)

// Network is a minimal feed-forward network.
//
// Predict takes a read lock on the weights and Retrain takes a write
// lock, so concurrent readers see either the old or the fully updated
// weights, never a partial update.
type Network struct {
	mu sync.RWMutex

	inputSize  int
	hiddenSize int

	// w1 is laid out input-major: w1[j*hiddenSize+i] connects input j
	// to hidden unit i. The layout is load-bearing for
	// FeatureImportance.
	w1 []float64
	b1 []float64
	w2 []float64
	b2 float64

	featureNames []string
}

// NewNetwork builds a network with weights drawn uniformly from
// [-0.1, 0.1) using the supplied random source. featureNames must have
// inputSize entries; they key the FeatureImportance map.
func NewNetwork(inputSize, hiddenSize int, featureNames []string, rng *rand.Rand) (*Network, error) {
	if inputSize <= 0 || hiddenSize <= 0 {
		return nil, fmt.Errorf("invalid network shape: %dx%d", inputSize, hiddenSize)
	}
	if len(featureNames) != inputSize {
		return nil, fmt.Errorf("got %d feature names for %d inputs", len(featureNames), inputSize)
	}

	n := &Network{
		inputSize:    inputSize,
		hiddenSize:   hiddenSize,
		w1:           make([]float64, inputSize*hiddenSize),
		b1:           make([]float64, hiddenSize),
		w2:           make([]float64, hiddenSize),
		featureNames: append([]string(nil), featureNames...),
	}
	for i := range n.w1 {
		n.w1[i] = rng.Float64()*0.2 - 0.1
	}
	for i := range n.b1 {
		n.b1[i] = rng.Float64()*0.2 - 0.1
	}
	for i := range n.w2 {
		n.w2[i] = rng.Float64()*0.2 - 0.1
	}
	n.b2 = rng.Float64()*0.2 - 0.1
	return n, nil
}

// Predict runs a forward pass and scales the sigmoid output to 0-100.
// Feature vectors shorter than the input size are zero-padded; longer
// ones are truncated.
func (n *Network) Predict(features []float64) float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, out := n.forward(features)
	return out * 100
}

// forward returns the hidden activations and the sigmoid output on a 0-1
// scale. Callers must hold at least a read lock.
func (n *Network) forward(features []float64) ([]float64, float64) {
	hidden := make([]float64, n.hiddenSize)
	for i := 0; i < n.hiddenSize; i++ {
		sum := n.b1[i]
		for j := 0; j < n.inputSize && j < len(features); j++ {
			sum += features[j] * n.w1[j*n.hiddenSize+i]
		}
		hidden[i] = relu(sum)
	}

	out := n.b2
	for i, h := range hidden {
		out += h * n.w2[i]
	}
	return hidden, sigmoid(out)
}

// Retrain runs SGD backpropagation over the samples: epochs passes,
// squared-error loss on the 0-1 output scale. Targets are clamped to
// [0,1].
func (n *Network) Retrain(samples []providers.TrainingSample) error {
	if len(samples) == 0 {
		return fmt.Errorf("no training samples")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for epoch := 0; epoch < epochs; epoch++ {
		for _, sample := range samples {
			target := math.Max(0, math.Min(1, sample.Target))
			hidden, out := n.forward(sample.Features)

			// Output delta through the sigmoid derivative.
			deltaOut := (out - target) * out * (1 - out)

			// Hidden deltas through the ReLU derivative, computed
			// against the pre-update output weights.
			deltaHidden := make([]float64, n.hiddenSize)
			for i, h := range hidden {
				if h > 0 {
					deltaHidden[i] = deltaOut * n.w2[i]
				}
			}

			for i, h := range hidden {
				n.w2[i] -= learningRate * deltaOut * h
			}
			n.b2 -= learningRate * deltaOut

			for j := 0; j < n.inputSize && j < len(sample.Features); j++ {
				x := sample.Features[j]
				if x == 0 {
					continue
				}
				for i := 0; i < n.hiddenSize; i++ {
					n.w1[j*n.hiddenSize+i] -= learningRate * deltaHidden[i] * x
				}
			}
			for i := 0; i < n.hiddenSize; i++ {
				n.b1[i] -= learningRate * deltaHidden[i]
			}
		}
	}
	return nil
}

// FeatureImportance sums absolute first-layer weight magnitudes per input
// feature.
func (n *Network) FeatureImportance() map[string]float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	importance := make(map[string]float64, n.inputSize)
	for j, name := range n.featureNames {
		total := 0.0
		for i := 0; i < n.hiddenSize; i++ {
			total += math.Abs(n.w1[j*n.hiddenSize+i])
		}
		importance[name] = total
	}
	return importance
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
