package location

import (
	"errors"
	"testing"
)

func TestDefault_Order(t *testing.T) {
	r := Default()

	want := []string{
		"tokyo-rain.mp3",
		"iceland-waterfall.mp3",
		"sahara-wind.mp3",
		"kyoto-birds.mp3",
		"nyc-subway.mp3",
	}
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, file := range want {
		loc, ok := r.At(i)
		if !ok {
			t.Fatalf("At(%d) not found", i)
		}
		if loc.AudioFile != file {
			t.Errorf("At(%d).AudioFile = %q, want %q", i, loc.AudioFile, file)
		}
	}
}

func TestRegistry_At_OutOfRange(t *testing.T) {
	r := Default()

	for _, i := range []int{-1, r.Len(), 100} {
		if _, ok := r.At(i); ok {
			t.Errorf("At(%d) ok = true, want false", i)
		}
	}
}

func TestRegistry_IndexOf(t *testing.T) {
	r := Default()

	if got := r.IndexOf("sahara-wind.mp3"); got != 2 {
		t.Errorf("IndexOf(sahara) = %d, want 2", got)
	}
	if got := r.IndexOf("missing.mp3"); got != -1 {
		t.Errorf("IndexOf(missing) = %d, want -1", got)
	}
}

func TestRegistry_All_ReturnsCopy(t *testing.T) {
	r := Default()

	all := r.All()
	all[0].Name = "changed"

	loc, _ := r.At(0)
	if loc.Name == "changed" {
		t.Error("All() exposed internal slice")
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	valid := Spec{Name: "Forest", Latitude: 10, Longitude: 20, AudioFile: "forest.mp3", Color: "#00ff00"}

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"missing name", func(s *Spec) { s.Name = " " }},
		{"missing file", func(s *Spec) { s.AudioFile = "" }},
		{"latitude too high", func(s *Spec) { s.Latitude = 91 }},
		{"longitude too low", func(s *Spec) { s.Longitude = -181 }},
		{"bad color", func(s *Spec) { s.Color = "green" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if _, err := NewRegistry([]Spec{s}); err == nil {
				t.Error("NewRegistry() error = nil, want error")
			}
		})
	}
}

func TestNewRegistry_Empty(t *testing.T) {
	_, err := NewRegistry(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("NewRegistry(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNewRegistry_DefaultIcon(t *testing.T) {
	r, err := NewRegistry([]Spec{{Name: "Forest", AudioFile: "forest.mp3", Color: "#00ff00"}})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	loc, _ := r.At(0)
	if loc.Icon != "🌍" {
		t.Errorf("Icon = %q, want 🌍", loc.Icon)
	}
}

func TestNewRegistry_DefaultColor(t *testing.T) {
	r, err := NewRegistry([]Spec{{Name: "Forest", AudioFile: "forest.mp3"}})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	loc, _ := r.At(0)
	if got := loc.Color.Hex(); got != DefaultColor {
		t.Errorf("Color = %s, want %s", got, DefaultColor)
	}
}
