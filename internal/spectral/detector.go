package spectral

import (
	"fmt"
)

// Detector is the interface for anomaly detection algorithms
type Detector interface {
	// Name returns the algorithm name
	Name() string

	// Detect runs the algorithm over values and returns per-sample results
	Detect(values []float64, cfg Config) (*Result, error)
}

// Registry holds available anomaly detectors
var detectorRegistry = make(map[string]Detector)

// Register adds a detector to the registry
func Register(name string, detector Detector) {
	detectorRegistry[name] = detector
}

// Get returns a detector by name
func Get(name string) (Detector, error) {
	if detector, ok := detectorRegistry[name]; ok {
		return detector, nil
	}
	return nil, fmt.Errorf("unknown anomaly detector: %s", name)
}

// List returns the names of the registered detectors
func List() []string {
	names := make([]string, 0, len(detectorRegistry))
	for name := range detectorRegistry {
		names = append(names, name)
	}
	return names
}

// ResidualDetector is the spectral residual algorithm behind the
// "spectral_residual" registry entry.
type ResidualDetector struct{}

func init() {
	Register("spectral_residual", &ResidualDetector{})
}

// Name returns the algorithm name
func (d *ResidualDetector) Name() string {
	return "spectral_residual"
}

// Detect runs the spectral residual pipeline on values
func (d *ResidualDetector) Detect(values []float64, cfg Config) (*Result, error) {
	return Detect(values, cfg)
}
