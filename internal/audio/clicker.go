package audio

import (
	"math"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneLength   = 60 * time.Millisecond
	toneVolume   = 0.3
	bufferPeriod = time.Second / 30
)

var frequencies = map[game.Judgement]float64{
	game.Perfect: 880,
	game.Great:   660,
	game.Good:    520,
	game.Miss:    120,
}

// Clicker plays a short tone for every judgement. It does nothing until Init
// succeeded, so the game runs fine without a sound device.
type Clicker struct {
	initialized bool
}

func (c *Clicker) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferPeriod)); nil != err {
		return err
	}
	c.initialized = true
	return nil
}

func (c *Clicker) Play(j game.Judgement) {
	if !c.initialized {
		return
	}
	freq, ok := frequencies[j]
	if !ok {
		return
	}
	speaker.Play(Tone(sampleRate, freq, toneLength))
}

// Tone is a sine wave at freq that fades out linearly over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	step := freq / float64(sr)
	phase := 0.0
	played := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			envelope := 1 - float64(played)/float64(total)
			v := math.Sin(2*math.Pi*phase) * toneVolume * envelope
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
			played++
		}
		return len(samples), true
	}))
}
