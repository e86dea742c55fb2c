// Package audio plays the kit's sound samples
package audio

import (
	"path"
)

// Samples maps each pad key to its sample file
var Samples = map[rune]string{
	'w': "crash.mp3",
	'a': "kick-bass.mp3",
	's': "snare.mp3",
	'd': "tom-1.mp3",
	'j': "tom-2.mp3",
	'k': "tom-3.mp3",
	'l': "tom-4.mp3",
}

// Player starts playback of a sample file and returns immediately
type Player interface {
	Play(name string)
}

// Trigger resolves pad keys to samples and hands them to a Player
type Trigger struct {
	player Player
	dir    string
}

// NewTrigger creates a trigger playing samples found under dir
// dir is a slash-separated path relative to the player's file system
func NewTrigger(p Player, dir string) *Trigger {
	return &Trigger{player: p, dir: dir}
}

// Path returns the sample path for key
func (t *Trigger) Path(key rune) (string, bool) {
	name, ok := Samples[key]
	if !ok {
		return "", false
	}
	if t.dir == "" || t.dir == "." {
		return name, true
	}
	return path.Join(t.dir, name), true
}

// Play starts the sample for key, reporting whether key has one
// Playback is fire-and-forget; overlapping plays of the same key are independent
func (t *Trigger) Play(key rune) bool {
	p, ok := t.Path(key)
	if !ok || t.player == nil {
		return false
	}
	t.player.Play(p)
	return true
}
