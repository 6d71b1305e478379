// Package assets resolves image and sound handles for the game. A missing
// asset is never fatal: images degrade to a deterministic flat-colored
// placeholder and sounds to nothing, each logged once.
package assets

import (
	"bytes"
	"embed"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *
var assetsFS embed.FS

const placeholderSize = 50

var (
	mu     sync.Mutex
	images = map[string]*ebiten.Image{}
	missed = map[string]bool{}

	audioContext = audio.NewContext(44100)
)

// LoadImage returns the image for key, cached. When the asset is absent the
// result is a flat-colored square whose color is derived from the key, so
// repeated runs draw the same placeholder.
func LoadImage(key string) *ebiten.Image {
	mu.Lock()
	defer mu.Unlock()

	if img, ok := images[key]; ok {
		return img
	}

	img, err := decodeImage(key)
	if err != nil {
		if !missed[key] {
			log.Printf("assets: image %q missing, using placeholder: %v", key, err)
			missed[key] = true
		}
		img = placeholder(key)
	}
	images[key] = img
	return img
}

// LoadSound returns an audio player for key, or nil when the asset is
// absent. Callers treat a nil player as a no-op.
func LoadSound(key string) *audio.Player {
	b, err := readFile(key)
	if err != nil {
		mu.Lock()
		if !missed[key] {
			log.Printf("assets: sound %q missing, skipping: %v", key, err)
			missed[key] = true
		}
		mu.Unlock()
		return nil
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		log.Printf("assets: sound %q undecodable, skipping: %v", key, err)
		return nil
	}
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		log.Printf("assets: sound %q player: %v", key, err)
		return nil
	}
	return player
}

func decodeImage(key string) (*ebiten.Image, error) {
	b, err := readFile(key)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func readFile(key string) ([]byte, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(key), "assets/")
	if b, err := assetsFS.ReadFile(clean); err == nil {
		return b, nil
	}
	return os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean)))
}

// placeholder builds a flat-colored square, color hashed from the key.
func placeholder(key string) *ebiten.Image {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	sum := h.Sum32()

	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(color.NRGBA{
		R: uint8(sum),
		G: uint8(sum >> 8),
		B: uint8(sum >> 16),
		A: 0xff,
	})
	return img
}
