// Package audio plays short tones for edit feedback
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Feedback plays a low tone on validation errors and a short high tone on commits
// Safe to use without Initialize: plays are then counted but silent
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	errors  int
	commits int

	unsubscribe []func()
}

// NewFeedback creates an uninitialized feedback player
func NewFeedback() *Feedback {
	return &Feedback{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(f.mixer)
	f.initialized = true
	log.Printf("[AUDIO] speaker ready at %d Hz", parameter.AudioSampleRate)
	return nil
}

// Attach subscribes to validation and insert events on bus
func (f *Feedback) Attach(bus *event.Bus) {
	f.unsubscribe = append(f.unsubscribe,
		bus.Subscribe(event.EventValidationError, func(event.Event) { f.PlayError() }),
		bus.Subscribe(event.EventRoomAdded, func(event.Event) { f.PlayCommit() }),
		bus.Subscribe(event.EventDoorAdded, func(event.Event) { f.PlayCommit() }),
	)
}

// Cleanup detaches from the bus and silences the mixer
func (f *Feedback) Cleanup() {
	for _, fn := range f.unsubscribe {
		fn()
	}
	f.unsubscribe = nil

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	f.initialized = false
}

// PlayError plays the rejection tone
func (f *Feedback) PlayError() {
	f.play(&f.errors, parameter.ToneErrorHz, sampleRate.N(parameter.ToneErrorLength))
}

// PlayCommit plays the confirmation tone
func (f *Feedback) PlayCommit() {
	f.play(&f.commits, parameter.ToneCommitHz, sampleRate.N(parameter.ToneCommitLen))
}

// Counts returns how many error and commit tones were requested
func (f *Feedback) Counts() (errors, commits int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors, f.commits
}

func (f *Feedback) play(counter *int, freq float64, samples int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	*counter++
	if !f.initialized {
		return
	}
	s, err := Tone(freq, samples)
	if err != nil {
		log.Printf("[AUDIO] tone %g Hz: %v", freq, err)
		return
	}
	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()
}

// Tone returns a finite sine tone at reduced volume
func Tone(freq float64, samples int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{Streamer: beep.Take(samples, sine), Gain: -0.7}, nil
}
