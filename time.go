package pe

import (
	"time"
)

// PE timestamps are 32 bit seconds since the epoch.
type UnixTimeStamp struct {
	time.Time
}

func (self UnixTimeStamp) DebugString() string {
	return self.String()
}

func (self UnixTimeStamp) String() string {
	result, _ := self.UTC().MarshalText()
	return string(result)
}

func NewUnixTimeStamp(timestamp uint32) UnixTimeStamp {
	return UnixTimeStamp{time.Unix(int64(timestamp), 0)}
}
