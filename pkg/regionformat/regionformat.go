// Package regionformat renders a selected region through a printf-like
// template.
//
// Supported directives:
//
//	%x %y  offsets from the left and the top of the screen
//	%X %Y  offsets from the right and the bottom of the screen
//	%w %h  width and height
//	%b %d  border width and depth of the root window
//	%%     a literal percent sign
//
// Any other character following a '%' is dropped together with the '%'.
package regionformat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xaionaro-go/xrectsel/pkg/rectsel"
)

const DefaultTemplate = "%wx%h+%x+%y\n"

var directives = map[byte]func(r rectsel.Region) string{
	'x': func(r rectsel.Region) string { return strconv.Itoa(r.X) },
	'y': func(r rectsel.Region) string { return strconv.Itoa(r.Y) },
	'X': func(r rectsel.Region) string { return strconv.Itoa(r.FarX) },
	'Y': func(r rectsel.Region) string { return strconv.Itoa(r.FarY) },
	'w': func(r rectsel.Region) string { return strconv.FormatUint(uint64(r.Width), 10) },
	'h': func(r rectsel.Region) string { return strconv.FormatUint(uint64(r.Height), 10) },
	'b': func(r rectsel.Region) string { return strconv.FormatUint(uint64(r.BorderWidth), 10) },
	'd': func(r rectsel.Region) string { return strconv.FormatUint(uint64(r.Depth), 10) },
	'%': func(rectsel.Region) string { return "%" },
}

func Format(template string, r rectsel.Region) string {
	var buf strings.Builder
	buf.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i >= len(template) {
			break
		}
		if fn, ok := directives[template[i]]; ok {
			buf.WriteString(fn(r))
		}
	}
	return buf.String()
}

// Fprint writes the rendered template to w in a single write, so a failure
// to render never results in partial output.
func Fprint(w io.Writer, template string, r rectsel.Region) error {
	s := Format(template, r)
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("unable to write the region %q: %w", s, err)
	}
	return nil
}
