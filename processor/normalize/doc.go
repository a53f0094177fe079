// Package normalize converts measurement messages flowing over NATS into
// canonical target units.
//
// The processor subscribes to one or more input subjects carrying Measurement
// JSON. Each measurement names a unit, either inside a combined quantity
// string ("21.5 degC") or as separate value and unit fields. The processor
// resolves the measurement's dimension, converts to the configured target
// unit for that dimension, and publishes a Normalized message on the output
// subject.
//
// Targets are configured as unit labels ("m", "kg", "K"); at most one target
// per dimension is allowed, so every incoming measurement has a single
// unambiguous canonical unit. Measurements whose dimension has no target, or
// whose unit is unknown, are counted as errors and dropped.
//
//	cfg := normalize.Config{
//	    InputSubjects: []string{"sensors.raw"},
//	    OutputSubject: "sensors.si",
//	    Targets:       []string{"m", "K", "m/s"},
//	}
//	proc, err := normalize.NewProcessor(cfg, nil, deps)
//
// The processor follows the platform component lifecycle: Start subscribes
// and returns, Stop drains with a timeout, Health reports running state and
// error counts.
package normalize
