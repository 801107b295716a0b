package classify

import "context"

// Example is one training pair: a frequency vector and a one-hot target.
type Example struct {
	Input  []float64
	Output []float64
}

// Config controls training.
type Config struct {
	// Iterations is the maximum number of passes over the training data.
	Iterations int `yaml:"iterations" json:"iterations"`
	// ErrorThresh stops training once the mean error drops below it.
	ErrorThresh float64 `yaml:"error_thresh" json:"errorThresh"`
	// Log enables progress logging.
	Log bool `yaml:"log" json:"log"`
	// LogPeriod is the number of iterations between log lines.
	LogPeriod    int     `yaml:"log_period" json:"logPeriod"`
	LearningRate float64 `yaml:"learning_rate" json:"learningRate"`
	Momentum     float64 `yaml:"momentum" json:"momentum"`
}

// DefaultConfig returns the stock training settings.
func DefaultConfig() Config {
	return Config{
		Iterations:   3000,
		ErrorThresh:  0.0006,
		Log:          true,
		LogPeriod:    10,
		LearningRate: 0.3,
		Momentum:     0.1,
	}
}

// Result summarizes a training run.
type Result struct {
	Iterations int     `json:"iterations"`
	Error      float64 `json:"error"`
}

// Classifier maps frequency vectors to per-class scores. Implementations
// restart from scratch on every Train call.
type Classifier interface {
	Train(ctx context.Context, examples []Example, cfg Config) (Result, error)
	Predict(input []float64) ([]float64, error)
	MarshalState() ([]byte, error)
	UnmarshalState(data []byte) error
}
