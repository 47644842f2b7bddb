package family

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wellgraded/errors"
)

func TestEncodeFormat(t *testing.T) {
	f := Collect(NewSet(1, 2), EmptySet(), NewSet(2))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f))
	assert.Equal(t, "\n2\n1,2\n", buf.String())
}

func TestDecode(t *testing.T) {
	in := "# example family\n\n1\n2\n1,2\n"
	f, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, f.Size())
	assert.True(t, f.Contains(EmptySet()))
	assert.True(t, f.Contains(NewSet(1, 2)))
}

func TestDecodeRejectsDuplicates(t *testing.T) {
	_, err := Decode(strings.NewReader("1,2\n2,1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateSet))
}

func TestDecodeBadElement(t *testing.T) {
	_, err := Decode(strings.NewReader("1,x,3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadFormat))
	assert.Contains(t, err.Error(), "line 1")
}

func TestDecodeRepeatedElement(t *testing.T) {
	_, err := Decode(strings.NewReader("1,1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadFormat))
}

func TestRoundTrip(t *testing.T) {
	orig := Collect(EmptySet(), NewSet(1), NewSet(2), NewSet(1, 2), NewSet(1, 2, 10))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, orig))
	parsed, err := Decode(&buf)
	require.NoError(t, err)

	assert.True(t, orig.Equal(parsed))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.txt")
	orig := Collect(NewSet(1), NewSet(1, 2), NewSet(1, 2, 3))

	require.NoError(t, WriteFile(path, orig))
	parsed, err := ReadFile(path)
	require.NoError(t, err)

	assert.True(t, orig.Equal(parsed))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
