package desktop

import (
	"bytes"
	"fmt"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/skyraid/internal/games/shooter"
)

// sampleRate is the audio context rate; WAV files are resampled to it.
const sampleRate = 44100

// beep describes the synthesized stand-in for a missing cue file.
type beep struct {
	freq float64
	dur  float64 // seconds
}

var cueBeeps = map[shooter.Cue]beep{
	shooter.CueEnemyFire:         {freq: 880, dur: 0.05},
	shooter.CueEnemyDestroyed:    {freq: 220, dur: 0.15},
	shooter.CueObstacleDestroyed: {freq: 140, dur: 0.12},
}

// Sound plays game cues through Ebitengine audio. Each cue is read from
// <cue>.wav, or synthesized as a short beep when the file is missing.
type Sound struct {
	players  map[shooter.Cue]*audio.Player
	settings *SettingsStore
}

// NewSound loads every cue from fsys. fsys may be nil.
func NewSound(ctx *audio.Context, fsys fs.FS, settings *SettingsStore, logger *log.Logger) *Sound {
	s := &Sound{
		players:  make(map[shooter.Cue]*audio.Player, len(cueBeeps)),
		settings: settings,
	}
	for cue, b := range cueBeeps {
		p, err := loadWav(ctx, fsys, cue.String()+".wav")
		if err != nil {
			logger.Debug("using synthesized cue", "cue", cue, "error", err)
			p = ctx.NewPlayerFromBytes(beepPCM(b.freq, b.dur, sampleRate))
		}
		s.players[cue] = p
	}
	return s
}

// Play implements shooter.AudioSink. A cue already playing restarts.
func (s *Sound) Play(cue shooter.Cue) {
	p := s.players[cue]
	if p == nil {
		return
	}
	if s.settings != nil {
		cfg := s.settings.Get()
		if !cfg.SoundEnabled {
			return
		}
		p.SetVolume(cfg.Volume)
	}
	_ = p.Rewind()
	p.Play()
}

func loadWav(ctx *audio.Context, fsys fs.FS, name string) (*audio.Player, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", name, err)
	}
	return p, nil
}

// beepPCM synthesizes a sine tone as 16-bit little-endian stereo PCM with
// a linear fade-out to avoid a click at the end.
func beepPCM(freq, dur float64, rate int) []byte {
	const amp = 0.3
	n := int(float64(rate) * dur)
	pcm := make([]byte, n*4)
	for i := range n {
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * amp * fade * math.MaxInt16)
		lo, hi := byte(v), byte(uint16(v)>>8)
		pcm[4*i], pcm[4*i+1] = lo, hi
		pcm[4*i+2], pcm[4*i+3] = lo, hi
	}
	return pcm
}
