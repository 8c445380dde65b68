// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package genemit

// CommentStyle is the closed set of comment syntaxes the header banner can
// be wrapped in.
type CommentStyle int

const (
	// CommentSlashStar wraps the banner in a single /* ... */ block, one
	// line per source line, for C and C-like headers.
	CommentSlashStar CommentStyle = iota
	// CommentHash prefixes every line with "# ", for shell and Make-style
	// outputs.
	CommentHash
	// CommentParenStar wraps the banner in a single (* ... *) block, for
	// the statically typed host binding's declaration/implementation
	// modules.
	CommentParenStar
)

// License is the closed set of licences a generated file may carry.
type License int

const (
	// LicensePermissive marks output meant to be linked into arbitrary
	// client programs, such as public headers and client-side stubs.
	LicensePermissive License = iota
	// LicenseCopyleft marks output that stays internal to the library's
	// own build, such as the daemon dispatch stubs.
	LicenseCopyleft
)

func (l License) spdx() string {
	switch l {
	case LicensePermissive:
		return "LGPL-2.1-or-later"
	case LicenseCopyleft:
		return "GPL-2.1-or-later"
	default:
		panic("genemit: unreachable license")
	}
}

// bannerLines is the notice every generated file carries, independent of
// comment syntax or licence.
var bannerLines = []string{
	"This file was generated by the API code generator.",
	"",
	"Do not edit this file directly: your changes will be lost the next",
	"time the generator runs. Edit the API description instead and",
	"regenerate.",
}

// WriteHeader emits the standard top-of-file banner: the generated-file
// notice, the SPDX identifier for lic, wrapped in style, followed by a
// blank line separating the banner from the file's own content.
func WriteHeader(w *W, style CommentStyle, lic License) {
	lines := append(append([]string{}, bannerLines...), "", "SPDX-License-Identifier: "+lic.spdx())

	switch style {
	case CommentSlashStar:
		w.Writeln("/*")
		for _, l := range lines {
			w.Write(" *")
			if l != "" {
				w.Write(" ")
				w.Write(l)
			}
			w.Writeln()
		}
		w.Writeln(" */")
	case CommentHash:
		for _, l := range lines {
			w.Write("#")
			if l != "" {
				w.Write(" ")
				w.Write(l)
			}
			w.Writeln()
		}
	case CommentParenStar:
		w.Writeln("(*")
		for _, l := range lines {
			w.Write(" *")
			if l != "" {
				w.Write(" ")
				w.Write(l)
			}
			w.Writeln()
		}
		w.Writeln(" *)")
	default:
		panic("genemit: unreachable comment style")
	}
	w.Writeln()
}
