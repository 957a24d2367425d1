package utils

import (
	"fmt"
	"hash/fnv"
)

// NameColor maps a staff name to a stable "#RRGGBB" color. It is a pure
// function of the name string: the same name always renders the same color
// across sessions and process restarts, independent of staff id. Channels are
// kept in [64,191] so the color stays readable on both light and dark event
// backgrounds.
func NameColor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()

	r := 64 + (sum>>16&0xFF)%128
	g := 64 + (sum>>8&0xFF)%128
	b := 64 + (sum&0xFF)%128
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
