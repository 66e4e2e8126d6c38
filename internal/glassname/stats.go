package glassname

import (
	"fmt"
	"io"
)

// Entry ties a decoded name back to the raw glass name and its catalog.
type Entry struct {
	Decoded Decoded
	Name    string
	Catalog string
}

// CatalogStats counts how a catalog uses the parts of its glass names.
type CatalogStats struct {
	Groups   map[string]int
	Variants map[[2]string]int // group/serial pairs shared by more than one glass
	Prefixes map[string]int
	Suffixes map[string]int
}

// Stats tallies groups, prefixes and suffixes over entries and keeps the
// group/serial pairs that have several variants.
func Stats(entries []Entry) CatalogStats {
	s := CatalogStats{
		Groups:   make(map[string]int),
		Variants: make(map[[2]string]int),
		Prefixes: make(map[string]int),
		Suffixes: make(map[string]int),
	}
	for _, e := range entries {
		d := e.Decoded
		if d.Prefix != "" {
			s.Prefixes[d.Prefix]++
		}
		if d.Suffix != "" {
			s.Suffixes[d.Suffix]++
		}
		s.Groups[d.Group]++
		s.Variants[d.Key()]++
	}
	for k, n := range s.Variants {
		if n < 2 {
			delete(s.Variants, k)
		}
	}
	return s
}

// PrintEntries writes each raw name next to its decoded parts.
func PrintEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		d := e.Decoded
		if _, err := fmt.Fprintf(w, "%-14s %2s  %-8s  %-12s\n", e.Name, d.Prefix, d.Group+d.Serial, d.Suffix); err != nil {
			return err
		}
	}
	return nil
}
