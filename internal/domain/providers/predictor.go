package providers

// TrainingSample pairs a feature vector with a target on a 0-1 scale.
type TrainingSample struct {
	Features []float64
	Target   float64
}

// Predictor is the strategy interface for the trainable auxiliary scorer.
// Predict maps a feature vector onto a 0-100 signal. The signal is
// advisory: it is not part of the weighted overall score.
//
// Implementations must be safe for concurrent Predict calls and must not
// let Retrain race with Predict (readers see either the old or the new
// weights, never a mix).
type Predictor interface {
	Predict(features []float64) float64
	Retrain(samples []TrainingSample) error
	FeatureImportance() map[string]float64
}
