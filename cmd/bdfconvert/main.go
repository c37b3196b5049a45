// seehuhn.de/go/bdf - read and convert glyph bitmap distribution format (BDF) fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Bdfconvert converts BDF fonts into renderer-ready data files.
//
// Usage:
//
//	bdfconvert [options] font.bdf NAME
//
// NAME must be a valid Go identifier; it is used to name the constants
// in generated Go code. Without -chars, -range or -mapping all glyphs of
// the font are converted.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/bdf"
	"seehuhn.de/go/bdf/convert"
)

func main() {
	chars := flag.String("chars", "", "characters to include")
	charRange := flag.String("range", "", "inclusive character range to include, e.g. \"A-Z\"")
	mappingName := flag.String("mapping", "", "include all characters of a standard mapping")
	substitute := flag.String("substitute", "", "substitution character for missing glyphs")
	replacement := flag.String("replacement", "", "replacement character")
	mono := flag.Bool("mono", false, "generate a fixed-cell glyph atlas instead of a packed bit stream")
	dataFile := flag.String("data", "", "write the font data to this file")
	goFile := flag.String("go", "", "write generated Go source to this file")
	goPackage := flag.String("pkg", "font", "package name for generated Go source")
	pngFile := flag.String("png", "", "write the glyph atlas as a PNG image to this file (implies -mono)")
	listMappings := flag.Bool("list-mappings", false, "list the supported standard mappings")
	flag.Parse()

	if *listMappings {
		for _, m := range convert.AllMappings() {
			fmt.Println(m)
		}
		return
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: bdfconvert [options] font.bdf NAME")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *chars, *charRange, *mappingName,
		*substitute, *replacement, *mono || *pngFile != "",
		*dataFile, *goFile, *goPackage, *pngFile); err != nil {
		fmt.Fprintln(os.Stderr, "bdfconvert:", err)
		os.Exit(1)
	}
}

func run(bdfFile, name, chars, charRange, mappingName, substitute, replacement string,
	mono bool, dataFile, goFile, goPackage, pngFile string) error {
	data, err := os.ReadFile(bdfFile)
	if err != nil {
		return err
	}

	font, err := bdf.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", bdfFile, err)
	}

	c := convert.New(font, name)
	if chars != "" {
		c.Chars(chars)
	}
	if charRange != "" {
		lo, hi, err := parseRange(charRange)
		if err != nil {
			return err
		}
		c.Range(lo, hi)
	}
	if mappingName != "" {
		m, ok := convert.ParseMapping(mappingName)
		if !ok {
			return fmt.Errorf("unknown mapping %q", mappingName)
		}
		c.Mapping(m)
	}
	if substitute != "" {
		r, err := singleRune(substitute)
		if err != nil {
			return fmt.Errorf("invalid -substitute: %w", err)
		}
		c.MissingGlyphSubstitute(r)
	}
	if replacement != "" {
		r, err := singleRune(replacement)
		if err != nil {
			return fmt.Errorf("invalid -replacement: %w", err)
		}
		c.ReplacementCharacter(r)
	}

	converted, err := c.Convert()
	if err != nil {
		return err
	}

	var fontData []byte
	var goSource string
	var atlas *convert.MonoFont
	if mono {
		atlas, err = convert.NewMono(converted)
		if err != nil {
			return err
		}
		fontData = atlas.Data
		goSource = atlas.GoSource(goPackage)
	} else {
		packed, err := convert.Pack(converted)
		if err != nil {
			return err
		}
		fontData = packed.Data
		goSource = packed.GoSource(goPackage)
	}

	if dataFile != "" {
		if err := os.WriteFile(dataFile, fontData, 0o666); err != nil {
			return err
		}
	}
	if goFile != "" {
		if err := os.WriteFile(goFile, []byte(goSource), 0o666); err != nil {
			return err
		}
	}
	if pngFile != "" {
		fd, err := os.Create(pngFile)
		if err != nil {
			return err
		}
		if err := png.Encode(fd, atlas.Image()); err != nil {
			fd.Close()
			return err
		}
		if err := fd.Close(); err != nil {
			return err
		}
	}

	return nil
}

func parseRange(s string) (lo, hi rune, err error) {
	first, rest := cutRune(s)
	rest, ok := strings.CutPrefix(rest, "-")
	last, tail := cutRune(rest)
	if first == utf8.RuneError || !ok || last == utf8.RuneError || tail != "" || first > last {
		return 0, 0, fmt.Errorf("invalid -range %q", s)
	}
	return first, last, nil
}

func cutRune(s string) (rune, string) {
	if s == "" {
		return utf8.RuneError, ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:]
}

func singleRune(s string) (rune, error) {
	r, rest := cutRune(s)
	if r == utf8.RuneError || rest != "" {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r, nil
}
