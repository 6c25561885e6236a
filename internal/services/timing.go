package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long op took. Use with defer.
func TrackTime(op string, start time.Time) {
	log.WithField("op", op).Debugf("took %d ms", time.Since(start).Milliseconds())
}
