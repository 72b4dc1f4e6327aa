// Package audio plays the short synthesized sound effects of the game.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect identifies a sound effect.
type Effect int

const (
	EffectEat Effect = iota
	EffectSpecial
	EffectGameOver
	EffectMenuSelect
)

func (e Effect) String() string {
	switch e {
	case EffectEat:
		return "eat"
	case EffectSpecial:
		return "special"
	case EffectGameOver:
		return "game_over"
	case EffectMenuSelect:
		return "menu_select"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// Player plays sound effects. Implementations must not block.
type Player interface {
	Play(Effect)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Effect) {}

// Note is one tone of an effect.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Notes returns the tone sequence of an effect.
func Notes(e Effect) []Note {
	switch e {
	case EffectEat:
		return []Note{{880, 40 * time.Millisecond}}
	case EffectSpecial:
		return []Note{
			{660, 50 * time.Millisecond},
			{880, 50 * time.Millisecond},
			{1320, 80 * time.Millisecond},
		}
	case EffectGameOver:
		return []Note{
			{440, 120 * time.Millisecond},
			{330, 120 * time.Millisecond},
			{220, 250 * time.Millisecond},
		}
	case EffectMenuSelect:
		return []Note{{520, 25 * time.Millisecond}}
	default:
		return nil
	}
}

// Build renders an effect into a finite streamer at the given sample rate.
// volume is a base-2 exponent applied on top of the tones.
func Build(sr beep.SampleRate, e Effect, volume float64) (beep.Streamer, error) {
	notes := Notes(e)
	if len(notes) == 0 {
		return nil, fmt.Errorf("audio: unknown effect %v", e)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Speaker plays effects on the default audio device.
type Speaker struct {
	mu      sync.Mutex
	volume  float64
	cache   map[Effect]*beep.Buffer
	logger  *log.Logger
	started bool
}

// NewSpeaker opens the audio device. The caller should fall back to Nop
// when this fails; the game runs fine without sound.
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	return &Speaker{
		volume:  volume,
		cache:   make(map[Effect]*beep.Buffer),
		logger:  logger,
		started: true,
	}, nil
}

// Play queues an effect. Effects overlap rather than interrupt each other.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	buf, ok := s.cache[e]
	if !ok {
		streamer, err := Build(sampleRate, e, s.volume)
		if err != nil {
			s.logger.Warn("sound effect unavailable", "effect", e, "error", err)
			return
		}
		buf = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(streamer)
		s.cache[e] = buf
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.started = false
}
