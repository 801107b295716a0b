package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/cognicore/bowtext/pkg/bowtext/internalerr"
)

// Softmax is a single-layer softmax regression trained by full-batch
// gradient descent with momentum. Weights start at zero, so training on the
// same examples always produces the same model.
type Softmax struct {
	mu      sync.RWMutex
	logger  *log.Logger
	weights [][]float64 // [class][feature]
	bias    []float64
}

// NewSoftmax creates an untrained classifier. A nil logger uses log.Default().
func NewSoftmax(logger *log.Logger) *Softmax {
	if logger == nil {
		logger = log.Default()
	}
	return &Softmax{logger: logger}
}

// Train fits the model to examples.
func (s *Softmax) Train(ctx context.Context, examples []Example, cfg Config) (Result, error) {
	if len(examples) == 0 {
		return Result{}, internalerr.ErrNoData
	}
	inputs, outputs := len(examples[0].Input), len(examples[0].Output)
	if outputs == 0 {
		return Result{}, fmt.Errorf("examples have no output classes: %w", internalerr.ErrInvalidInput)
	}
	for i, ex := range examples {
		if len(ex.Input) != inputs || len(ex.Output) != outputs {
			return Result{}, fmt.Errorf("example %d has shape %dx%d, want %dx%d: %w",
				i, len(ex.Input), len(ex.Output), inputs, outputs, internalerr.ErrInvalidInput)
		}
	}
	if cfg.Iterations <= 0 {
		return Result{}, fmt.Errorf("iterations must be positive: %w", internalerr.ErrInvalidConfig)
	}

	weights, wVel, wGrad := matrix(outputs, inputs), matrix(outputs, inputs), matrix(outputs, inputs)
	bias, bVel, bGrad := make([]float64, outputs), make([]float64, outputs), make([]float64, outputs)
	probs := make([]float64, outputs)
	delta := make([]float64, outputs)
	n := float64(len(examples))

	var res Result
	for iter := 1; iter <= cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("training interrupted at iteration %d: %w", iter, err)
		}

		zero(wGrad...)
		zero(bGrad)
		var loss float64
		for _, ex := range examples {
			forward(weights, bias, ex.Input, probs)
			floats.SubTo(delta, probs, ex.Output)
			for k, d := range delta {
				if d != 0 {
					floats.AddScaled(wGrad[k], d, ex.Input)
				}
				if ex.Output[k] > 0 {
					loss -= ex.Output[k] * math.Log(math.Max(probs[k], 1e-15))
				}
			}
			floats.Add(bGrad, delta)
		}

		res = Result{Iterations: iter, Error: loss / n}
		if cfg.Log && cfg.LogPeriod > 0 && iter%cfg.LogPeriod == 0 {
			s.logger.Printf("iterations: %d, training error: %g", iter, res.Error)
		}
		if res.Error < cfg.ErrorThresh {
			break
		}

		step := -cfg.LearningRate / n
		for k := range weights {
			floats.Scale(cfg.Momentum, wVel[k])
			floats.AddScaled(wVel[k], step, wGrad[k])
			floats.Add(weights[k], wVel[k])
		}
		floats.Scale(cfg.Momentum, bVel)
		floats.AddScaled(bVel, step, bGrad)
		floats.Add(bias, bVel)
	}

	s.mu.Lock()
	s.weights, s.bias = weights, bias
	s.mu.Unlock()
	return res, nil
}

// Predict returns class probabilities for input.
func (s *Softmax) Predict(input []float64) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.bias == nil {
		return nil, internalerr.ErrUntrained
	}
	if len(s.weights) > 0 && len(input) != len(s.weights[0]) {
		return nil, fmt.Errorf("input has %d features, model expects %d: %w",
			len(input), len(s.weights[0]), internalerr.ErrInvalidInput)
	}
	probs := make([]float64, len(s.bias))
	forward(s.weights, s.bias, input, probs)
	return probs, nil
}

type softmaxState struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// MarshalState encodes the trained parameters.
func (s *Softmax) MarshalState() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.bias == nil {
		return nil, internalerr.ErrUntrained
	}
	return json.Marshal(softmaxState{Weights: s.weights, Bias: s.bias})
}

// UnmarshalState restores parameters written by MarshalState.
func (s *Softmax) UnmarshalState(data []byte) error {
	var st softmaxState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode softmax state: %w", err)
	}
	if len(st.Bias) == 0 || len(st.Weights) != len(st.Bias) {
		return fmt.Errorf("softmax state has %d weight rows for %d classes: %w",
			len(st.Weights), len(st.Bias), internalerr.ErrInvalidInput)
	}
	for _, row := range st.Weights {
		if len(row) != len(st.Weights[0]) {
			return fmt.Errorf("softmax state has ragged weights: %w", internalerr.ErrInvalidInput)
		}
	}

	s.mu.Lock()
	s.weights, s.bias = st.Weights, st.Bias
	s.mu.Unlock()
	return nil
}

// forward writes softmax(W·x + b) into out.
func forward(weights [][]float64, bias, x, out []float64) {
	for k := range out {
		out[k] = bias[k] + floats.Dot(weights[k], x)
	}
	peak := floats.Max(out)
	for k := range out {
		out[k] = math.Exp(out[k] - peak)
	}
	floats.Scale(1/floats.Sum(out), out)
}

func matrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func zero(rows ...[]float64) {
	for _, r := range rows {
		for i := range r {
			r[i] = 0
		}
	}
}
