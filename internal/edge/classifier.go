// Package edge implements the road-state classifier and the MQTT
// consume/republish loop that runs it against a stream of agent samples.
package edge

import "iot-system/internal/domain"

// Classifier turns a stream of raw agent samples into classified
// records. It holds the single previous sample needed to estimate jerk;
// the first sample of a stream has no history and is always classified
// as smooth.
type Classifier struct {
	previous *domain.Agent
}

// NewClassifier returns a classifier with no history.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the classified record for current, and advances the
// classifier's history to current.
func (c *Classifier) Classify(current domain.Agent) domain.ProcessedAgentData {
	roadState := domain.RoadStateSmooth
	if c.previous != nil {
		roadState = classify(*c.previous, current)
	}

	next := current
	c.previous = &next

	return domain.NewProcessedAgentData(current, roadState)
}

// classify estimates the vertical jerk between two consecutive
// accelerometer readings and compares it against the roughness
// threshold. A non-positive elapsed time can't yield a meaningful rate
// and is treated as smooth.
func classify(previous, current domain.Agent) domain.RoadState {
	dt := current.Timestamp.Sub(previous.Timestamp).Seconds()
	if dt <= 0 {
		return domain.RoadStateSmooth
	}

	const roughnessThreshold = 1000.0 // mm/s^3
	jerk := (current.Accelerometer.Z - previous.Accelerometer.Z) / dt

	if jerk < 0 {
		jerk = -jerk
	}
	if jerk > roughnessThreshold {
		return domain.RoadStateRough
	}
	return domain.RoadStateSmooth
}
