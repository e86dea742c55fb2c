package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/drumkit/constant"
)

// ErrUnsupportedFormat is returned for sample files beep cannot decode
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// Config holds playback settings
type Config struct {
	SampleRate int
	Buffer     time.Duration
	Volume     float64 // Linear gain, 0 silences
	Muted      bool
}

// DefaultConfig returns the default playback settings
func DefaultConfig() Config {
	return Config{
		SampleRate: constant.AudioSampleRate,
		Buffer:     constant.AudioBufferDuration,
		Volume:     1,
	}
}

// SoundManager decodes samples on first use and mixes every play into the speaker
type SoundManager struct {
	mu          sync.Mutex
	fsys        fs.FS
	rate        beep.SampleRate
	buffer      time.Duration
	buffers     map[string]*beep.Buffer
	failed      map[string]error
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	log         *slog.Logger

	// Speaker lock; swapped in tests
	lock   func()
	unlock func()
}

// NewSoundManager creates a sound manager reading samples from fsys
func NewSoundManager(fsys fs.FS, cfg Config, log *slog.Logger) *SoundManager {
	if log == nil {
		log = slog.Default()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constant.AudioSampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = constant.AudioBufferDuration
	}

	mixer := &beep.Mixer{}
	sm := &SoundManager{
		fsys:    fsys,
		rate:    beep.SampleRate(cfg.SampleRate),
		buffer:  cfg.Buffer,
		buffers: make(map[string]*beep.Buffer),
		failed:  make(map[string]error),
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: constant.AudioVolumeBase},
		log:     log,
		lock:    speaker.Lock,
		unlock:  speaker.Unlock,
	}
	sm.setVolume(cfg.Volume)
	sm.volume.Silent = sm.volume.Silent || cfg.Muted
	return sm
}

// setVolume converts a linear gain to the exponent effects.Volume expects
func (sm *SoundManager) setVolume(gain float64) {
	if gain <= 0 {
		sm.volume.Volume = 0
		sm.volume.Silent = true
		return
	}
	sm.volume.Volume = math.Log(gain) / math.Log(constant.AudioVolumeBase)
}

// Initialize opens the speaker and starts the mix
// Without an audio device the error is returned and plays stay silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(sm.buffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	sm.log.Info("audio initialized", "rate", int(sm.rate), "buffer", sm.buffer)
	return nil
}

// Preload decodes the named samples, returning the first failure
func (sm *SoundManager) Preload(names ...string) error {
	var first error
	for _, name := range names {
		if _, err := sm.load(name); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// load returns the decoded buffer for name, decoding it on first use
// A failed decode is remembered so the file is not retried or re-logged
func (sm *SoundManager) load(name string) (*beep.Buffer, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if buf, ok := sm.buffers[name]; ok {
		return buf, nil
	}
	if err, ok := sm.failed[name]; ok {
		return nil, err
	}

	buf, err := sm.decode(name)
	if err != nil {
		sm.failed[name] = err
		sm.log.Warn("sample unavailable", "sample", name, "error", err)
		return nil, err
	}
	sm.buffers[name] = buf
	sm.log.Debug("sample decoded", "sample", name, "samples", buf.Len())
	return buf, nil
}

// decode reads name and converts it to the output sample rate
func (sm *SoundManager) decode(name string) (*beep.Buffer, error) {
	f, err := sm.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sm.rate {
		src = beep.Resample(constant.AudioResampleQuality, format.SampleRate, sm.rate, streamer)
	}

	format.SampleRate = sm.rate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return buf, nil
}

// Play adds an independent playback of name to the mix
func (sm *SoundManager) Play(name string) {
	buf, err := sm.load(name)
	if err != nil {
		return
	}

	sm.lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	sm.unlock()
}

// ToggleMute flips the mute state, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	sm.lock()
	defer sm.unlock()
	sm.volume.Silent = !sm.volume.Silent
	return !sm.volume.Silent
}

// IsMuted returns the current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.lock()
	defer sm.unlock()
	return sm.volume.Silent
}

// Playing returns the number of samples currently in the mix
func (sm *SoundManager) Playing() int {
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
