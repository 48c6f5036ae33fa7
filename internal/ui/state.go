package ui

import (
	"strings"
	"sync"
	"time"

	"github.com/OpenTraceLab/multislider/internal/config"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Status     string
	LastError  error
	AppVersion string

	RTL       bool
	Dark      bool
	Recording bool
	Recorded  int

	Logs []string

	LastUpdated time.Time
}

// AppState tracks the mutable state shared between the Gio event loop and
// the log writer, which may be called from any goroutine.
type AppState struct {
	mu sync.RWMutex

	status     string
	lastError  error
	appVersion string

	rtl        bool
	dark       bool
	recording  bool
	recorded   int
	recordPath string

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline AppState with safe defaults.
func NewState() *AppState {
	return &AppState{
		status:      "Idle",
		appVersion:  "dev",
		dark:        true,
		logLimit:    200,
		lastUpdated: time.Now(),
	}
}

// NewStateFromConfig seeds the state with persisted UI preferences.
func NewStateFromConfig(cfg *config.AppConfig) *AppState {
	s := NewState()
	if cfg == nil {
		return s
	}
	s.rtl = cfg.UI.RTL
	s.dark = cfg.UI.Dark
	if cfg.UI.LogLines > 0 {
		s.logLimit = cfg.UI.LogLines
	}
	return s
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Status:      s.status,
		LastError:   s.lastError,
		AppVersion:  s.appVersion,
		RTL:         s.rtl,
		Dark:        s.dark,
		Recording:   s.recording,
		Recorded:    s.recorded,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
}

// SetStatus updates the status line.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// SetError records the last error, or clears it with nil.
func (s *AppState) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.lastUpdated = time.Now()
}

// AppendLog appends a log message, trimming the oldest entries past the limit.
func (s *AppState) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}

// Write implements io.Writer so the state can sit behind a zerolog
// ConsoleWriter. Each line becomes one log entry.
func (s *AppState) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			s.AppendLog(line)
		}
	}
	return len(p), nil
}

// SetAppVersion records the running application version string.
func (s *AppState) SetAppVersion(version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version == "" {
		version = "dev"
	}
	s.appVersion = version
	s.lastUpdated = time.Now()
}

// SetRTL switches the layout direction of the slider page.
func (s *AppState) SetRTL(rtl bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rtl = rtl
	s.lastUpdated = time.Now()
}

// SetDark selects the dark or light palette.
func (s *AppState) SetDark(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = dark
	s.lastUpdated = time.Now()
}

// SetRecordPath sets where recorded gestures are written. Recording is
// unavailable while it is empty.
func (s *AppState) SetRecordPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordPath = path
}

// RecordPath returns the gesture recording destination.
func (s *AppState) RecordPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordPath
}

// SetRecording toggles gesture recording and resets the event counter when
// a new recording starts.
func (s *AppState) SetRecording(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on && !s.recording {
		s.recorded = 0
	}
	s.recording = on
	s.lastUpdated = time.Now()
}

// Recording reports whether gestures are being recorded.
func (s *AppState) Recording() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recording
}

// CountRecorded bumps the recorded event counter.
func (s *AppState) CountRecorded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded++
}
