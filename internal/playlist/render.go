package playlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const indent = "    "

// Render produces the complete document:
//
//	const <variable> = [ ...4-space indented JSON... ];
//
// Non-ASCII text and HTML-significant characters are written as-is. There
// is no trailing newline after the semicolon.
func Render(variable string, tracks []Track) ([]byte, error) {
	if tracks == nil {
		tracks = []Track{}
	}

	var buf bytes.Buffer
	buf.WriteString("const ")
	buf.WriteString(variable)
	buf.WriteString(" = ")

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(tracks); err != nil {
		return nil, fmt.Errorf("encode tracks: %w", err)
	}

	// Encode terminates the value with a newline.
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	out = unescapeLineSeparators(out)
	return append(out, ';'), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into raw characters. Backslash pairs are copied as a
// unit so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, c, data[i+1])
		i++
	}
	return out
}

// Encode writes the rendered document to w.
func Encode(w io.Writer, variable string, tracks []Track) error {
	data, err := Render(variable, tracks)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
