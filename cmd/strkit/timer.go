package main

import "time"

// timer logs the elapsed time of a named step at debug level.
type timer struct {
	name  string
	start time.Time
}

func startTimer(name string) *timer {
	return &timer{name: name, start: time.Now()}
}

func (t *timer) done(format string, args ...interface{}) {
	log.WithField("step", t.name).
		WithField("elapsed", time.Since(t.start)).
		Debugf(format, args...)
}
