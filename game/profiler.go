package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrProfiling is returned when a capture is requested while one is running
var ErrProfiling = errors.New("already profiling")

// Profiler captures CPU profiles on demand
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	logger          *zap.Logger
	wg              sync.WaitGroup
}

// NewProfiler creates a profiler writing into dir. The directory is created on
// the first capture.
func NewProfiler(dir string, duration time.Duration, logger *zap.Logger) *Profiler {
	return &Profiler{
		captureCooldown: 2 * duration, // Don't capture back to back
		profilesDir:     dir,
		captureDuration: duration,
		logger:          logger.Named("profiler"),
	}
}

// CaptureProfile starts a CPU profile capture in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return ErrProfiling
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Second))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("%s-%s", reason, timestamp)

	// Capture in a goroutine to avoid blocking the game
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		path, err := p.captureCPUProfile(baseName)
		if err != nil {
			p.logger.Error("CPU profile capture failed", zap.Error(err))
			return
		}
		p.analyzeProfile(path)
	}()

	return nil
}

// captureCPUProfile records a CPU profile for the capture duration
func (p *Profiler) captureCPUProfile(baseName string) (string, error) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return "", fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return "", fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	return profilePath, nil
}

// analyzeProfile logs where the profile went together with memory stats
func (p *Profiler) analyzeProfile(profilePath string) {
	info, err := os.Stat(profilePath)
	if err != nil {
		p.logger.Warn("could not stat profile", zap.Error(err))
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("CPU profile saved",
		zap.String("path", profilePath),
		zap.Int64("bytes", info.Size()),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
		zap.Uint32("num_gc", m.NumGC),
		zap.String("view", "go tool pprof -http=:8080 "+profilePath))
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until the running capture, if any, has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}
