package gml

import "time"

// defaultNowMillis is the wall-clock source used when no spoof is set.
func defaultNowMillis() int64 {
	return time.Now().UnixMilli()
}

// currentTimeMillis implements the `current_time` getter: spoofed time
// when present, truncated to 32 bits as the original engine's millisecond
// counter does; otherwise wall clock quantized to a coarse 16ms tick,
// matching the platform timer resolution it models.
func (eng *Engine) currentTimeMillis() int32 {
	if eng.SpoofMillis != nil {
		return int32(uint32(*eng.SpoofMillis))
	}
	return int32(eng.wallMillis() &^ 0xF)
}

// calendarSource returns the time.Time the date getters derive from:
// the spoofed instant if set, else wall clock.
func (eng *Engine) calendarSource() time.Time {
	if eng.SpoofMillis != nil {
		return time.UnixMilli(*eng.SpoofMillis).UTC()
	}
	return time.UnixMilli(eng.wallMillis()).UTC()
}
