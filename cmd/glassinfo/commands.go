package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/opticalglass/internal/glassmap"
	"github.com/udisondev/opticalglass/internal/glassname"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/modelglass"
	"github.com/udisondev/opticalglass/internal/spectral"
)

type command struct {
	name    string
	usage   string
	desc    string
	minArgs int
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"index", "<name>[,catalog...] [catalog ...]", "refractive index at the standard lines", 1, cmdIndex},
	{"decode", "<name> ...", "decode glass names", 1, cmdDecode},
	{"catalogs", "", "list catalogs with glass counts", 0, cmdCatalogs},
	{"list", "<catalog>", "list the glasses of a catalog", 1, cmdList},
	{"stats", "<catalog>", "glass naming statistics", 1, cmdStats},
	{"map", "[-partials a,b] <catalog>", "glass map coordinates", 1, cmdMap},
	{"model", "<nd> <vd> [label]", "register a model glass", 2, cmdModel},
	{"custom", "", "list custom glasses", 0, cmdCustom},
}

func commandByName(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func cmdIndex(ctx context.Context, a *app, args []string) error {
	name, cats := args[0], args[1:]
	if n, rest, ok := strings.Cut(name, ","); ok {
		name = n
		cats = append(strings.Split(rest, ","), cats...)
	}

	g, err := a.factory.CreateGlassContext(ctx, name, cats...)
	if err != nil {
		return err
	}

	code, err := medium.GlassCode(g)
	if err != nil {
		code = "-"
	}
	fmt.Fprintf(a.out, "%s %s: %s\n", g.CatalogName(), g.Name(), code)
	for _, line := range spectral.Lines() {
		wv, _ := spectral.Wavelength(line)
		n, err := medium.Rindex(g, spectral.Line(line))
		if err != nil {
			fmt.Fprintf(a.out, "  %-3s %9.4f nm  %v\n", line, wv, err)
			continue
		}
		fmt.Fprintf(a.out, "  %-3s %9.4f nm  %.6f\n", line, wv, n)
	}
	return nil
}

func cmdDecode(_ context.Context, a *app, args []string) error {
	entries := make([]glassname.Entry, 0, len(args))
	for _, name := range args {
		d, err := glassname.Decode(name)
		if err != nil {
			return err
		}
		entries = append(entries, glassname.Entry{Decoded: d, Name: name})
	}
	return glassname.PrintEntries(a.out, entries)
}

func cmdCatalogs(ctx context.Context, a *app, _ []string) error {
	if err := a.factory.Preload(ctx); err != nil {
		return err
	}
	for _, name := range a.factory.Catalogs().Names() {
		c, err := a.factory.GetCatalog(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%-26s %4d\n", name, len(c.GlassNames()))
	}
	for _, name := range a.factory.Custom().Catalogs() {
		fmt.Fprintf(a.out, "%-26s %4d  (custom)\n", name, len(a.factory.Custom().CatalogList(name)))
	}
	return nil
}

func cmdList(_ context.Context, a *app, args []string) error {
	c, err := a.factory.GetCatalog(args[0])
	if err != nil {
		return err
	}
	return glassname.PrintEntries(a.out, c.GlassList())
}

func cmdStats(_ context.Context, a *app, args []string) error {
	c, err := a.factory.GetCatalog(args[0])
	if err != nil {
		return err
	}
	list := c.GlassList()
	s := glassname.Stats(list)

	fmt.Fprintf(a.out, "%s: %d glasses, %d decoded\n", c.Name(), len(c.GlassNames()), len(list))
	printCounts(a, "groups", s.Groups)
	printCounts(a, "prefixes", s.Prefixes)
	printCounts(a, "suffixes", s.Suffixes)

	variants := make(map[string]int, len(s.Variants))
	for k, n := range s.Variants {
		variants[k[0]+k[1]] = n
	}
	printCounts(a, "variants", variants)
	return nil
}

func printCounts(a *app, label string, counts map[string]int) {
	keys := slices.Sorted(maps.Keys(counts))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, counts[k])
	}
	fmt.Fprintf(a.out, "  %-9s %s\n", label, strings.Join(parts, " "))
}

func cmdMap(_ context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	fs.SetOutput(a.out)
	partials := fs.String("partials", "", "lines a,b for the partial dispersion (default C,d)")
	disp := fs.Bool("disp", false, "divide the Buchdahl coefficients by nd-1")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: glassinfo map [-partials a,b] [-disp] <catalog>")
	}

	var opts []glassmap.Option
	if *partials != "" {
		la, lb, ok := strings.Cut(*partials, ",")
		if !ok {
			return fmt.Errorf("partials must be two lines, got %q", *partials)
		}
		opts = append(opts, glassmap.WithPartials(la, lb))
	}
	if *disp {
		opts = append(opts, glassmap.WithDispersionCoefs())
	}

	c, err := a.factory.GetCatalog(fs.Arg(0))
	if err != nil {
		return err
	}
	d, err := glassmap.FromCatalog(c, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%-16s %8s %7s %7s %10s %10s\n", "glass", "nd", "vd", "P", "nu1", "nu2")
	for i, name := range d.Names {
		fmt.Fprintf(a.out, "%-16s %8.5f %7.2f %7.4f %10.6f %10.6f\n", name, d.Nd[i], d.Vd[i], d.P[i], d.Nu1[i], d.Nu2[i])
	}
	ndMin, ndMax, vdMin, vdMax := d.Extent()
	fmt.Fprintf(a.out, "nd %.4f..%.4f  vd %.2f..%.2f\n", ndMin, ndMax, vdMin, vdMax)
	return nil
}

func cmdModel(_ context.Context, a *app, args []string) error {
	nd, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("nd: %w", err)
	}
	vd, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("vd: %w", err)
	}
	label := ""
	if len(args) > 2 {
		label = args[2]
	}

	b := a.cfg.Buchdahl
	g, err := modelglass.NewWithModel(nd, vd, label, modelglass.DefaultCatalog, b.B, b.M)
	if err != nil {
		return err
	}
	if err := a.factory.RegisterGlass(g); err != nil {
		return err
	}
	fmt.Fprintln(a.out, g)

	if dir := a.cfg.CustomGlassDir; dir != "" {
		if err := a.factory.SaveCustomGlasses(dir); err != nil {
			return err
		}
		slog.Debug("custom glasses saved", "dir", dir)
	}
	return nil
}

func cmdCustom(_ context.Context, a *app, _ []string) error {
	return a.factory.Custom().Print(a.out)
}
