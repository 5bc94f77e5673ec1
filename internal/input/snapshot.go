// Package input holds the per-frame input state the simulation reads.
package input

// Key is a logical key the simulation reads from a snapshot.
type Key int

const (
	KeyEscape Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeySpace
	KeyCount // Sentinel value for array sizing
)

var keyNames = [KeyCount]string{
	KeyEscape: "Esc",
	Key0:      "0",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	Key5:      "5",
	Key6:      "6",
	Key7:      "7",
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyQ:      "Q",
	KeyE:      "E",
	KeySpace:  "Space",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// Button is a mouse button bitmask.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
)

// Has reports whether every bit of mask is set.
func (b Button) Has(mask Button) bool {
	return mask != 0 && b&mask == mask
}

// Snapshot is the input state sampled once per frame.
type Snapshot struct {
	// Cursor movement in pixels since the previous sample, measured before
	// the cursor is recentered.
	DX, DY int

	Buttons Button
	Keys    [KeyCount]bool
}

// Down reports whether k is held.
func (s Snapshot) Down(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.Keys[k]
}


// With returns a copy of s with the given keys held. It keeps scripted
// input in tests and tools short.
func (s Snapshot) With(keys ...Key) Snapshot {
	for _, k := range keys {
		if k >= 0 && k < KeyCount {
			s.Keys[k] = true
		}
	}
	return s
}
