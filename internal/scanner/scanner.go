// Package scanner rescans the configured search paths in the background and
// publishes fresh snapshots of discovered kegs, engines, and wrapper
// templates. It never blocks the render loop: publication uses the snapshot
// cell's try-store and skips the cycle on contention.
package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/logging/events"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

// Config describes where and how often to scan.
type Config struct {
	KegSearchPaths     []string
	EngineSearchPaths  []string
	WrapperSearchPaths []string
	Interval           time.Duration
	Home               string // substituted for a leading ~; defaults to os.UserHomeDir
}

// Scanner owns the background discovery goroutine.
type Scanner struct {
	cell *snapshot.Cell
	cfg  Config
	stop chan struct{}
	done chan struct{}
}

// New starts a scanner publishing into the given cell.
func New(cell *snapshot.Cell, cfg Config) *Scanner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Home = home
		}
	}
	s := &Scanner{
		cell: cell,
		cfg:  cfg,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

// Stop signals the scanner to exit without waiting for it. Pending writes
// become moot once the program is tearing down.
func (s *Scanner) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}

// Wait blocks until the scan goroutine has exited. Call after Stop when a
// clean shutdown is required (e.g. in tests).
func (s *Scanner) Wait() {
	<-s.done
}

func (s *Scanner) run() {
	defer close(s.done)
	pace := pacer{interval: minCycleSpacing}
	for {
		select {
		case <-s.stop:
			return
		default:
		}
		pace.wait()
		snap := s.Scan()
		if s.cell.TryStore(snap) {
			events.Scan.Published(len(snap.Kegs), len(snap.Engines), len(snap.Wrappers))
		} else {
			events.Scan.SkippedPublish()
		}
		select {
		case <-s.stop:
			return
		case <-time.After(s.cfg.Interval):
		}
	}
}

// Scan performs one discovery pass and returns a fresh snapshot. Exposed so
// tests can exercise classification without the goroutine.
func (s *Scanner) Scan() *snapshot.Snapshot {
	snap := &snapshot.Snapshot{}
	for _, entry := range readSearchPaths(s.cfg.KegSearchPaths, s.cfg.Home) {
		if isKeg(entry) {
			snap.Kegs = append(snap.Kegs, keg.FromPath(entry))
		}
	}
	for _, entry := range readSearchPaths(s.cfg.EngineSearchPaths, s.cfg.Home) {
		if strings.HasSuffix(filepath.Base(entry), keg.EngineSuffix) {
			snap.Engines = append(snap.Engines, keg.Engine{Path: entry})
		}
	}
	for _, entry := range readSearchPaths(s.cfg.WrapperSearchPaths, s.cfg.Home) {
		if strings.HasSuffix(filepath.Base(entry), keg.WrapperSuffix) {
			snap.Wrappers = append(snap.Wrappers, keg.Wrapper{Path: entry})
		}
	}
	return snap
}

// readSearchPaths expands each search path and returns the full paths of
// its immediate entries. Unreadable directories are skipped, not errors: a
// search path is allowed to not exist.
func readSearchPaths(paths []string, home string) []string {
	var out []string
	for _, p := range paths {
		dir := ExpandHome(p, home)
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	return out
}

// ExpandHome substitutes the home directory for a leading ~.
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func isKeg(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(path, filepath.FromSlash(keg.MarkerSubPath)))
	return err == nil
}

// minCycleSpacing bounds filesystem churn when the refresh interval is
// configured very low.
const minCycleSpacing = 250 * time.Millisecond

// pacer enforces a minimum spacing between scan cycles. Used only from the
// scan goroutine, so it carries no lock.
type pacer struct {
	interval time.Duration
	next     time.Time
}

func (p *pacer) wait() {
	if p.interval <= 0 {
		return
	}
	if wait := time.Until(p.next); wait > 0 {
		time.Sleep(wait)
	}
	p.next = time.Now().Add(p.interval)
}
