package seal

import "time"

// Recorder receives operational events from a Selector.
// Implement it to export selector activity to a monitoring system.
type Recorder interface {
	// RecordRecommendation is called after every Recommend. score is only
	// meaningful when matched is true.
	RecordRecommendation(matched bool, score float64, duration time.Duration)

	// RecordAdd is called after every AddSeal attempt; err is nil on success.
	RecordAdd(err error)
}

// NoopRecorder discards every event.
type NoopRecorder struct{}

func (NoopRecorder) RecordRecommendation(bool, float64, time.Duration) {}
func (NoopRecorder) RecordAdd(error)                                   {}
