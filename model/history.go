package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize bounds how many recent states are remembered
const historySize = 5

// History stores recent world hashes for cycle detection
type History struct {
	hashes []string
}

// Hash returns an MD5 digest of the live population.
// Cells are hashed in sorted order so equal populations hash equally.
func (w *World) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range w.alive.Sorted() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Update adds the current state to history and maintains size
func (h *History) Update(w *World) {
	h.hashes = append(h.hashes, w.Hash())

	// Keep only the last few states to detect cycles
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the world repeats one of its last three
// recorded states, which covers still lifes and period-2 and period-3 oscillators
func (h *History) IsStagnant(w *World) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := w.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
