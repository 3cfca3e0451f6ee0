package noncereuse

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLineParser_ParseInput(t *testing.T) {
	assert := require.New(t)
	parser := &LineParser{}

	in, err := parser.ParseInput(filepath.Join(fixturesDir(), "known_vector.txt"))
	assert.NoError(err)
	assert.Equal(knownS1, in.S1.Text(16))
	assert.Equal(knownS2, in.S2.Text(16))
	assert.Equal(knownR, in.R.Text(16))
	assert.Equal(int64(111), in.H1.Int64())
	assert.Equal(int64(222), in.H2.Int64())
}

func TestLineParser_Truncated(t *testing.T) {
	assert := require.New(t)
	parser := &LineParser{}

	_, err := parser.ParseInput(filepath.Join(fixturesDir(), "truncated.txt"))
	assert.Error(err)
	assert.True(errors.Is(err, ErrMissingLine))

	var ie *InputError
	assert.True(errors.As(err, &ie))
	assert.Equal(5, ie.Line)
	assert.Equal("h2", ie.Field)
}

func TestLineParser_InvalidHex(t *testing.T) {
	assert := require.New(t)
	parser := &LineParser{}

	_, err := parser.ParseInput(filepath.Join(fixturesDir(), "invalid_hex.txt"))
	assert.True(errors.Is(err, ErrInvalidHex))

	var ie *InputError
	assert.True(errors.As(err, &ie))
	assert.Equal(3, ie.Line)
	assert.Equal("r", ie.Field)
	assert.Equal("zzzz", ie.Value)
	assert.Contains(err.Error(), "line 3")
	assert.Contains(err.Error(), "zzzz")
}

func TestLineParser_MissingFile(t *testing.T) {
	parser := &LineParser{}

	_, err := parser.ParseInput(filepath.Join(fixturesDir(), "nonexistent.txt"))
	require.Error(t, err)
	require.False(t, IsInputError(err))
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantErr   error
		wantValue string
	}{
		{"empty", "", 1, ErrMissingLine, ""},
		{"four lines", "1\n2\n3\n4\n", 5, ErrMissingLine, ""},
		{"four lines no newline", "1\n2\n3\n4", 5, ErrMissingLine, ""},
		{"blank line", "1\n\n3\n4\n5\n", 2, ErrInvalidHex, ""},
		{"0x prefix", "0x1\n2\n3\n4\n5\n", 1, ErrInvalidHex, "0x1"},
		{"negative", "1\n2\n-3\n4\n5\n", 3, ErrInvalidHex, "-3"},
		{"underscore", "1\n2\n3\n4\n5_0\n", 5, ErrInvalidHex, "5_0"},
		{"non hex letters", "1\n2\n3\nzzzz\n5\n", 4, ErrInvalidHex, "zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLines(strings.NewReader(tt.input))
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var ie *InputError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, tt.wantLine, ie.Line)
			require.Equal(t, fieldNames[tt.wantLine-1], ie.Field)
			require.Equal(t, tt.wantValue, ie.Value)
		})
	}
}

func TestParseLines_Lenient(t *testing.T) {
	assert := require.New(t)

	// CRLF endings, surrounding spaces, upper case and trailing lines are accepted
	in, err := ParseLines(strings.NewReader("AB\r\n  cd \r\n1\n2\n3\nignored\n"))
	assert.NoError(err)
	assert.Equal("ab", in.S1.Text(16))
	assert.Equal("cd", in.S2.Text(16))
	assert.Equal(int64(1), in.R.Int64())
	assert.Equal(int64(2), in.H1.Int64())
	assert.Equal(int64(3), in.H2.Int64())
}

func TestJSONParser_ParseInput(t *testing.T) {
	assert := require.New(t)
	parser := &JSONParser{}

	in, err := parser.ParseInput(filepath.Join(fixturesDir(), "sha256_vector.json"))
	assert.NoError(err)

	fromLines, err := (&LineParser{}).ParseInput(filepath.Join(fixturesDir(), "sha256_vector.txt"))
	assert.NoError(err)
	assert.Equal(fromLines, in)
}

func TestJSONParser_CustomFields(t *testing.T) {
	assert := require.New(t)
	parser := &JSONParser{S1Field: "sig1_s", S2Field: "sig2_s", RField: "sig_r", H1Field: "z1", H2Field: "z2"}

	in, err := parser.Parse(strings.NewReader(`{"sig1_s":"a","sig2_s":"b","sig_r":"c","z1":"d","z2":"e"}`))
	assert.NoError(err)
	assert.Equal(int64(0xa), in.S1.Int64())
	assert.Equal(int64(0xe), in.H2.Int64())
}

func TestJSONParser_Errors(t *testing.T) {
	parser := &JSONParser{}

	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantField string
	}{
		{"missing field", `{"s1":"1","s2":"2","h1":"3","h2":"4"}`, ErrMissingField, "r"},
		{"not hex", `{"s1":"1","s2":"2","r":"3","h1":"zzzz","h2":"4"}`, ErrInvalidHex, "h1"},
		{"number value", `{"s1":1,"s2":"2","r":"3","h1":"4","h2":"5"}`, ErrInvalidHex, "s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var ie *InputError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, tt.wantField, ie.Field)
			require.Equal(t, 0, ie.Line)
		})
	}

	_, err := parser.Parse(strings.NewReader(`not json`))
	require.Error(t, err)
	require.False(t, IsInputError(err))
}
