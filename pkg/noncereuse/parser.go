package noncereuse

import (
	"bufio"
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// InputParser defines the interface for reading the five recovery values from a source.
type InputParser interface {
	// ParseInput parses s1, s2, r, h1 and h2 from a source.
	ParseInput(source string) (*Input, error)
}

// LineParser parses the line format: one hexadecimal value per line, in the
// order s1, s2, r, h1, h2, without a 0x prefix. Lines after the fifth are ignored.
type LineParser struct{}

// ParseInput parses the line format from a file.
func (p *LineParser) ParseInput(path string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input")
	}
	defer file.Close()

	return ParseLines(file)
}

// ParseLines parses the line format from r.
func ParseLines(r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)
	in := &Input{}

	for i, f := range in.fields() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to read line %d", i+1)
			}
			return nil, &InputError{Line: i + 1, Field: fieldNames[i], Err: ErrMissingLine}
		}

		raw := scanner.Text()
		v, ok := parseHex(raw)
		if !ok {
			return nil, &InputError{Line: i + 1, Field: fieldNames[i], Value: raw, Err: ErrInvalidHex}
		}
		*f = v
	}

	return in, nil
}

// JSONParser parses a JSON object holding the five values as hex strings.
type JSONParser struct {
	S1Field string // Field name for s1 (default: "s1")
	S2Field string // Field name for s2 (default: "s2")
	RField  string // Field name for r (default: "r")
	H1Field string // Field name for h1 (default: "h1")
	H2Field string // Field name for h2 (default: "h2")
}

// ParseInput parses a JSON file.
//
// Expected format:
//
//	{"s1": "...", "s2": "...", "r": "...", "h1": "...", "h2": "..."}
func (p *JSONParser) ParseInput(path string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input")
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse parses a JSON object from r.
func (p *JSONParser) Parse(r io.Reader) (*Input, error) {
	var item map[string]interface{}
	if err := json.NewDecoder(r).Decode(&item); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}

	names := p.names()
	in := &Input{}

	for i, f := range in.fields() {
		val, ok := item[names[i]]
		if !ok {
			return nil, &InputError{Field: fieldNames[i], Err: ErrMissingField}
		}

		raw, ok := val.(string)
		if !ok {
			return nil, &InputError{Field: fieldNames[i], Value: toString(val), Err: ErrInvalidHex}
		}

		v, ok := parseHex(raw)
		if !ok {
			return nil, &InputError{Field: fieldNames[i], Value: raw, Err: ErrInvalidHex}
		}
		*f = v
	}

	return in, nil
}

func (p *JSONParser) names() [5]string {
	names := fieldNames
	for i, custom := range [5]string{p.S1Field, p.S2Field, p.RField, p.H1Field, p.H2Field} {
		if custom != "" {
			names[i] = custom
		}
	}
	return names
}

// parseHex parses a non-empty string of hex digits. Surrounding whitespace
// is ignored; signs, 0x prefixes and underscores are rejected.
func parseHex(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 16)
}

func toString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
