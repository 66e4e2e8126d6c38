// Package glassname normalizes manufacturer glass names into a
// catalog-independent lookup key.
package glassname

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrNoSerial is returned when the core of a glass name has no digits.
var ErrNoSerial = errors.New("glass name has no serial number")

// Decoded is the normalized form of a glass name. Two names that decode to
// the same Group and Serial are variants of the same base glass.
type Decoded struct {
	Group  string
	Serial string
	Prefix string
	Suffix string
}

// Key returns the (group, serial) pair.
func (d Decoded) Key() [2]string { return [2]string{d.Group, d.Serial} }

// GroupNum returns the serial number as an integer.
func (d Decoded) GroupNum() (int, error) {
	return strconv.Atoi(d.Serial)
}

func (d Decoded) String() string {
	var b strings.Builder
	if d.Prefix != "" {
		b.WriteString(d.Prefix)
		b.WriteByte('-')
	}
	b.WriteString(d.Group)
	b.WriteString(d.Serial)
	if d.Suffix != "" {
		b.WriteByte('-')
		b.WriteString(d.Suffix)
	}
	return b.String()
}

// Decode splits a glass name into group, serial, prefix and suffix.
//
// The name is upper-cased and split on '-'. A single segment is the core.
// Three segments are prefix, core and suffix. With two segments a first
// part shorter than three characters is a prefix, otherwise it is the core
// and the second part is the suffix. Inside the core the first digit run is
// the serial; the text before it is the group, and any text after it
// becomes the suffix unless one was already split off.
func Decode(name string) (Decoded, error) {
	var d Decoded
	parts := strings.Split(strings.ToUpper(name), "-")

	var core string
	switch {
	case len(parts) == 1:
		core = parts[0]
	case len(parts) == 2:
		if len(parts[0]) < 3 {
			d.Prefix, core = parts[0], parts[1]
		} else {
			core, d.Suffix = parts[0], parts[1]
		}
	default:
		d.Prefix = parts[0]
		core = strings.Join(parts[1:len(parts)-1], "-")
		d.Suffix = parts[len(parts)-1]
	}

	runes := []rune(core)
	start := -1
	for i, r := range runes {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return Decoded{}, fmt.Errorf("decode %q: %w", name, ErrNoSerial)
	}

	end := start
	for end < len(runes) && unicode.IsDigit(runes[end]) {
		end++
	}

	d.Group = strings.TrimRightFunc(string(runes[:start]), unicode.IsSpace)
	d.Serial = string(runes[start:end])
	if d.Suffix == "" {
		d.Suffix = string(runes[end:])
	}
	return d, nil
}
