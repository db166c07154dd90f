package font

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"
)

// ParseToUnicode parses a ToUnicode CMap stream and returns the mapping
// from single-byte character codes to Unicode text.
//
// Only the bfchar and bfrange sections are interpreted; the surrounding
// PostScript scaffolding (codespace ranges, CMap dictionaries) carries no
// information for single-byte fonts and is skipped.
func ParseToUnicode(data []byte) (map[byte]string, error) {
	mapping := make(map[byte]string)
	content := string(data)

	if err := parseSections(content, "beginbfchar", "endbfchar", func(section string) error {
		return parseBfChar(section, mapping)
	}); err != nil {
		return nil, err
	}
	if err := parseSections(content, "beginbfrange", "endbfrange", func(section string) error {
		return parseBfRange(section, mapping)
	}); err != nil {
		return nil, err
	}
	return mapping, nil
}

// parseSections finds every begin/end delimited section and passes its
// body to fn.
func parseSections(content, begin, end string, fn func(string) error) error {
	for {
		beginIdx := strings.Index(content, begin)
		if beginIdx == -1 {
			return nil
		}
		rest := content[beginIdx+len(begin):]
		endIdx := strings.Index(rest, end)
		if endIdx == -1 {
			return fmt.Errorf("unterminated %s section", begin)
		}
		if err := fn(rest[:endIdx]); err != nil {
			return err
		}
		content = rest[endIdx+len(end):]
	}
}

// parseBfChar parses lines of the form <srcCode> <dstUnicode>.
func parseBfChar(section string, mapping map[byte]string) error {
	tokens := hexTokens(section)
	for i := 0; i+1 < len(tokens); i += 2 {
		code, err := hexByte(tokens[i])
		if err != nil {
			return fmt.Errorf("bfchar source %q: %w", tokens[i], err)
		}
		text, err := hexText(tokens[i+1])
		if err != nil {
			return fmt.Errorf("bfchar destination %q: %w", tokens[i+1], err)
		}
		mapping[code] = text
	}
	return nil
}

// parseBfRange parses lines of the form <lo> <hi> <dstStart>. The array
// destination form <lo> <hi> [<d0> <d1> ...] does not occur in the
// single-byte fonts this package targets and is rejected.
func parseBfRange(section string, mapping map[byte]string) error {
	if strings.Contains(section, "[") {
		return fmt.Errorf("bfrange array destinations are not supported")
	}
	tokens := hexTokens(section)
	for i := 0; i+2 < len(tokens); i += 3 {
		lo, err := hexByte(tokens[i])
		if err != nil {
			return fmt.Errorf("bfrange low %q: %w", tokens[i], err)
		}
		hi, err := hexByte(tokens[i+1])
		if err != nil {
			return fmt.Errorf("bfrange high %q: %w", tokens[i+1], err)
		}
		if hi < lo {
			return fmt.Errorf("bfrange %X..%X is inverted", lo, hi)
		}
		start, err := hexText(tokens[i+2])
		if err != nil {
			return fmt.Errorf("bfrange destination %q: %w", tokens[i+2], err)
		}
		runes := []rune(start)
		if len(runes) == 0 {
			continue
		}
		last := runes[len(runes)-1]
		for off := 0; off <= int(hi)-int(lo); off++ {
			runes[len(runes)-1] = last + rune(off)
			mapping[lo+byte(off)] = string(runes)
		}
	}
	return nil
}

// hexTokens returns the contents of every <...> token in order.
func hexTokens(section string) []string {
	var tokens []string
	for {
		open := strings.IndexByte(section, '<')
		if open == -1 {
			return tokens
		}
		section = section[open+1:]
		close := strings.IndexByte(section, '>')
		if close == -1 {
			return tokens
		}
		tokens = append(tokens, strings.TrimSpace(section[:close]))
		section = section[close+1:]
	}
}

// hexByte decodes a source code token, which must be a single byte.
func hexByte(tok string) (byte, error) {
	if len(tok)%2 == 1 {
		tok += "0"
	}
	b, err := hex.DecodeString(tok)
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, fmt.Errorf("expected single-byte code, got %d bytes", len(b))
	}
	return b[0], nil
}

// hexText decodes a destination token: UTF-16BE code units.
func hexText(tok string) (string, error) {
	if len(tok)%2 == 1 {
		tok += "0"
	}
	b, err := hex.DecodeString(tok)
	if err != nil {
		return "", err
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units)), nil
}
