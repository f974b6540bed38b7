package player

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// ClipInfo describes an audio file on disk.
type ClipInfo struct {
	Path   string
	Title  string
	Artist string // recordist credit, when tagged
	Album  string
	Year   int
	Format string // "MP3", "FLAC", "WAV"
	Size   int64
}

// ReadClipInfo reads tags and file size. Untagged files still return the
// file name as title; only a missing or unreadable file is an error.
func ReadClipInfo(path string) (*ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	info := &ClipInfo{
		Path:   path,
		Title:  filepath.Base(path),
		Format: strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")),
		Size:   st.Size(),
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		// dhowden/tag gives up on some UTF-16 ID3 frames and on WAV
		// INFO chunks.
		readFallbackTags(path, info)
		return info, nil
	}
	info.setTags(m.Title(), m.Artist(), m.Album(), m.Year())
	return info, nil
}

func (c *ClipInfo) setTags(title, artist, album string, year int) {
	if title != "" {
		c.Title = title
	}
	c.Artist = artist
	c.Album = album
	c.Year = year
}

func readFallbackTags(path string, info *ClipInfo) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3:
		readID3v2(path, info)
	case extFLAC, extWAV:
		readTaglib(path, info)
	}
}

func readID3v2(path string, info *ClipInfo) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer t.Close()
	info.setTags(t.Title(), t.Artist(), t.Album(), parseYear(t.Year()))
}

func readTaglib(path string, info *ClipInfo) {
	tags, err := taglib.ReadTags(path)
	if err != nil {
		return
	}
	first := func(key string) string {
		if v := tags[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	info.setTags(first(taglib.Title), first(taglib.Artist), first(taglib.Album), parseYear(first(taglib.Date)))
}

// parseYear takes the year from "2024" or "2024-05-01".
func parseYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}
