package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Converted 4 rooms (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports editing and conversion events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnQueue(sessionID, intent string, offset, length int) {
	h.logger.Debug("queued edit", "session", short(sessionID), "intent", intent, "offset", offset, "length", length)
}

func (h *logHooks) OnRejected(sessionID, intent, room string) {
	h.logger.Debug("intent not applicable", "session", short(sessionID), "intent", intent, "room", room)
}

func (h *logHooks) OnApply(sessionID string, edits, outputBytes int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("apply failed", "session", short(sessionID), "edits", edits, "err", err)
		return
	}
	h.logger.Debug("applied edits", "session", short(sessionID), "edits", edits, "bytes", outputBytes, "took", duration)
}

func (h *logHooks) OnConvertStart(anchor string, rooms int) {
	h.logger.Debug("converting floor", "anchor", anchor, "rooms", rooms)
}

func (h *logHooks) OnConvertComplete(anchor string, assigned, unresolved int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("conversion failed", "anchor", anchor, "err", err)
		return
	}
	h.logger.Debug("converted floor", "anchor", anchor, "assigned", assigned, "unresolved", unresolved, "took", duration)
}

// short trims a session UUID to its first group.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
