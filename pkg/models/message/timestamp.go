package message

import "time"

const TimeFormatString = "2006-01-02 15:04:05"

// TimeStamp is a second resolution local time, as written into redis.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(TimeFormatString))
}

func (ts TimeStamp) Time() time.Time {
	parsedTime, _ := time.ParseInLocation(TimeFormatString, string(ts), time.Local)
	return parsedTime
}

// Since is the time elapsed since ts, zero when ts does not parse.
func (ts TimeStamp) Since() time.Duration {
	t := ts.Time()
	if t.IsZero() {
		return 0
	}
	return time.Since(t)
}
