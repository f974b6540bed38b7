package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// source is one decoded clip ready to be handed to the speaker.
type source struct {
	id       LoadID
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	started  bool
}

// IsAudioFile reports whether path has an extension the player can decode.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	}
	return false
}

// Load starts decoding path in the background and returns its ID.
// Any previous clip is released immediately.
func (p *Player) Load(path string) LoadID {
	p.mu.Lock()
	p.loadID++
	id := p.loadID
	p.releaseLocked()
	p.mu.Unlock()

	go p.open(id, path)
	return id
}

func (p *Player) open(id LoadID, path string) {
	src, err := openSource(path)
	if err != nil {
		p.mu.Lock()
		current := id == p.loadID
		p.mu.Unlock()
		if current {
			p.emit(Failed(id, err))
		}
		return
	}

	p.mu.Lock()
	if id != p.loadID {
		// Superseded while decoding.
		p.mu.Unlock()
		src.close()
		return
	}
	src.id = id
	src.volume.Volume = levelToVolume(p.volumeLevel)
	src.volume.Silent = p.muted
	p.src = src
	p.state = Stopped
	duration := src.duration()
	p.mu.Unlock()

	p.emit(MetadataReady(id, duration))
}

func openSource(path string) (*source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsAudioFile(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = decodeGoMP3(f)
	case extFLAC:
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		return nil, err
	}

	var play beep.Streamer = streamer
	if format.SampleRate != rate {
		play = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	ctrl := &beep.Ctrl{Streamer: play, Paused: true}

	return &source{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   &effects.Volume{Streamer: ctrl, Base: 2},
	}, nil
}

// initSpeaker opens the audio device once, at the first clip's sample rate.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("open audio device: %w", err)
	}
	speakerInitialized = true
	speakerSampleRate = rate
	return rate, nil
}

func speakerReady() bool {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	return speakerInitialized
}

func (s *source) duration() time.Duration {
	return s.format.SampleRate.D(s.streamer.Len())
}

func (s *source) position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return s.format.SampleRate.D(s.streamer.Position())
}

func (s *source) close() {
	if s.streamer != nil {
		s.streamer.Close()
	}
	if s.file != nil {
		s.file.Close()
	}
}

// skipID3v2 skips an ID3v2 tag prepended to a FLAC stream.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	if _, err := io.ReadFull(r, header); err != nil {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	if string(header[0:3]) != "ID3" {
		_, err := r.Seek(0, io.SeekStart)
		return err
	}
	// Syncsafe size: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err := r.Seek(10+size, io.SeekStart)
	return err
}
