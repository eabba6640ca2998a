// Package token holds the lightweight source-position types shared by the
// decoder, translator, and diagnostic sink. The dump format itself has no
// lexical token stream in the traditional sense — the decoder is a cursor
// over a string (see internal/decoder) — but every RawTree still needs a
// place to record "where in the dump, and where in the original Swift file,
// did this come from" for error reporting.
package token

import "fmt"

// Pos is a 1-based line/column position, either in the AST dump text or
// (when parsed from a `range=`/`loc=` attribute) in the original .swift file.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Pos) IsZero() bool { return p.Line == 0 && p.Column == 0 }

// Location is a `file.swift:LINE:COL` source-location token as produced by
// the Swift frontend, e.g. the value half of `range=Foo.swift:12:4 - line:14:9`.
type Location struct {
	File string
	Pos  Pos
}

func (l Location) String() string {
	if l.File == "" {
		return l.Pos.String()
	}
	return fmt.Sprintf("%s:%s", l.File, l.Pos.String())
}

// Range is a start/end pair of Locations, as produced by a `range=` attribute.
// The end location commonly omits the file (`- line:14:9`) when it is the
// same file as the start; End.File is left empty in that case and callers
// should fall back to Start.File.
type Range struct {
	Start Location
	End   Location
}

// EndFile returns End.File, falling back to Start.File when the end location
// didn't repeat the filename.
func (r Range) EndFile() string {
	if r.End.File != "" {
		return r.End.File
	}
	return r.Start.File
}

// DeclRef is a `Module.Type.member@file:line:col` declaration-reference
// token, as produced by a `decl=` attribute on a Declaration Reference
// Expression.
type DeclRef struct {
	Components []string // e.g. ["Swift", "Int", "init"]
	File       string
	Pos        Pos
}

func (d DeclRef) String() string {
	s := ""
	for i, c := range d.Components {
		if i > 0 {
			s += "."
		}
		s += c
	}
	if d.File != "" {
		s += fmt.Sprintf("@%s:%s", d.File, d.Pos.String())
	}
	return s
}

// IsStandardLibrary reports whether the first dotted component is "Swift",
// the convention the frontend uses for standard-library declarations.
func (d DeclRef) IsStandardLibrary() bool {
	return len(d.Components) > 0 && d.Components[0] == "Swift"
}
