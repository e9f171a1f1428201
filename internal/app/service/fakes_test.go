package service

import (
	"context"
	"fmt"
	"sync"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.msg)
	}
	return out
}

// callLog records sub-client calls across every fake adopter of a test.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *callLog) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type fakeAdopter struct {
	name string
	log  *callLog
	err  error
}

func (a *fakeAdopter) ChangeSignerAddress(_ context.Context, address string) error {
	a.log.add(fmt.Sprintf("%s:%s", a.name, address))
	return a.err
}

type fakeSDK struct {
	cfg    entity.ClientConfig
	base   *fakeAdopter
	router *fakeAdopter
}

func (s *fakeSDK) BaseClient() port.SignerAdopter {
	if s.base == nil {
		return nil
	}
	return s.base
}

func (s *fakeSDK) RouterClient() port.SignerAdopter {
	if s.router == nil {
		return nil
	}
	return s.router
}

func newFakeSDK(log *callLog) *fakeSDK {
	return &fakeSDK{
		base:   &fakeAdopter{name: port.SubClientBase, log: log},
		router: &fakeAdopter{name: port.SubClientRouter, log: log},
	}
}

type fakeFactory struct {
	mu      sync.Mutex
	configs []entity.ClientConfig
	err     error
	// gate, when set, blocks Create for the config whose domain count matches the key.
	gate map[int]chan struct{}
}

func (f *fakeFactory) Create(_ context.Context, cfg entity.ClientConfig) (port.SDK, error) {
	f.mu.Lock()
	f.configs = append(f.configs, cfg)
	gate := f.gate[len(cfg.Chains)]
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &fakeSDK{cfg: cfg}, nil
}

func (f *fakeFactory) created() []entity.ClientConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.ClientConfig(nil), f.configs...)
}
