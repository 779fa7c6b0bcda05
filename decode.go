package gridtext

import (
	"bytes"
	"strings"

	"github.com/domonda/go-types/charset"
)

// DefaultEncodings are tried in order by DecodeLines
// if no encodings are passed.
var DefaultEncodings = []string{
	"UTF-8",
	"UTF-16LE",
	"ISO 8859-1",
	"Windows 1252", // like ANSI
	"Macintosh",
}

// encodingTests are characters with different byte
// representations across the supported encodings.
var encodingTests = []string{
	"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
	"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
}

// DecodeLines decodes a raw document to UTF-8 and splits it into lines.
//
// The encoding is detected by trying the passed encodings
// (or DefaultEncodings if none are passed) in order,
// falling back to UTF-8. A byte order mark is removed.
// Lines may be terminated by "\n" or "\r\n", the terminators
// are not part of the returned lines. A final newline
// does not produce an additional empty line.
func DecodeLines(data []byte, encodings ...string) (lines []string, encoding string, err error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	encs := make([]charset.Encoding, 0, len(encodings))
	for _, name := range encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, "", err
		}
		encs = append(encs, enc)
	}

	data = charset.TrimBOM(data, charset.BOMUTF8)
	data, encoding, err = charset.AutoDecode(data, encs, encodingTests)
	if err != nil {
		return nil, "", err
	}
	if encoding == "" {
		encoding = "UTF-8"
	}
	data = sanitizeUTF8(data)

	return SplitLines(string(data)), encoding, nil
}

// SplitLines splits text into lines terminated by "\n" or "\r\n".
// A trailing line terminator does not result in an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			// \u00a0 is No-Break Space (NBSP)
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}
