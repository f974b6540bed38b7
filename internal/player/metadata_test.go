package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalMP3 writes a single silent MPEG1 Layer3 frame.
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00
	require.NoError(t, os.WriteFile(path, frame, 0o600))
}

func tagMP3(t *testing.T, path string, enc id3v2.Encoding) {
	t.Helper()
	tg, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tg.AddTextFrame("TIT2", enc, "Morning Chorus")
	tg.AddTextFrame("TPE1", enc, "Field Recordist")
	tg.AddTextFrame("TALB", enc, "Kyoto")
	tg.AddTextFrame("TYER", enc, "2023")
	require.NoError(t, tg.Save())
	require.NoError(t, tg.Close())
}

func TestReadClipInfo_ID3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kyoto-birds.mp3")
	createMinimalMP3(t, path)
	tagMP3(t, path, id3v2.EncodingUTF8)

	info, err := ReadClipInfo(path)
	require.NoError(t, err)

	assert.Equal(t, "Morning Chorus", info.Title)
	assert.Equal(t, "Field Recordist", info.Artist)
	assert.Equal(t, "Kyoto", info.Album)
	assert.Equal(t, "MP3", info.Format)
	assert.Positive(t, info.Size)
}

func TestReadClipInfo_UTF16Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kyoto-birds.mp3")
	createMinimalMP3(t, path)
	tagMP3(t, path, id3v2.EncodingUTF16)

	info, err := ReadClipInfo(path)
	require.NoError(t, err)

	assert.Equal(t, "Morning Chorus", info.Title)
	assert.Equal(t, "Field Recordist", info.Artist)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2024", 2024},
		{"2024-05-01", 2024},
		{"24", 0},
		{"abcd", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseYear(tt.in), tt.in)
	}
}
