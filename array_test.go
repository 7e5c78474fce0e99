package varray

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempArrayPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "array.vm")
}

func newTestIntArray(t *testing.T, size int64) (*Array[int32], string) {
	t.Helper()
	path := tempArrayPath(t)
	a, err := NewIntArray(path, size, DefaultOptions())
	require.NoError(t, err)
	return a, path
}

func newTestTextArray(t *testing.T, size int64, fixedLen int) (*Array[string], string) {
	t.Helper()
	path := tempArrayPath(t)
	a, err := NewFixedTextArray(path, size, fixedLen, DefaultOptions())
	require.NoError(t, err)
	return a, path
}

func TestDefaultReadIsZero(t *testing.T) {
	a, _ := newTestIntArray(t, 1000)
	defer a.Close()

	for _, idx := range []int64{0, 1, 127, 128, 999} {
		v, err := a.Read(idx)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestDefaultReadIsEmptyString(t *testing.T) {
	a, _ := newTestTextArray(t, 100, 8)
	defer a.Close()

	v, err := a.Read(50)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestWriteReadRoundtrip(t *testing.T) {
	a, _ := newTestIntArray(t, 1000)
	defer a.Close()

	cases := map[int64]int32{0: 7, 1: -1, 127: 2147483647, 128: -2147483648, 999: 42}
	for idx, v := range cases {
		require.NoError(t, a.Write(idx, v))
	}
	for idx, want := range cases {
		got, err := a.Read(idx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWrittenZeroIsStillZero(t *testing.T) {
	a, _ := newTestIntArray(t, 100)
	defer a.Close()

	// explicitly written default is tracked via the presence bitmap but
	// reads back identically
	require.NoError(t, a.Write(3, 0))
	v, err := a.Read(3)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestTextTruncationOnWrite(t *testing.T) {
	a, _ := newTestTextArray(t, 100, 8)
	defer a.Close()

	require.NoError(t, a.Write(5, "abcdefghij"))

	// truncation is visible immediately, not only after a write-back
	v, err := a.Read(5)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", v)
}

func TestTextRoundtrip(t *testing.T) {
	a, path := newTestTextArray(t, 100, 8)

	require.NoError(t, a.Write(0, "hi"))
	require.NoError(t, a.Write(99, "12345678"))
	require.NoError(t, a.Close())

	a, err := NewFixedTextArray(path, 100, 8, DefaultOptions())
	require.NoError(t, err)
	defer a.Close()

	v, err := a.Read(0)
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
	v, err = a.Read(99)
	require.NoError(t, err)
	assert.Equal(t, "12345678", v)
}

func TestBounds(t *testing.T) {
	a, _ := newTestIntArray(t, 1000)
	defer a.Close()

	_, err := a.Read(1000)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.Read(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, a.Write(1000, 1), ErrIndexOutOfRange)

	_, err = a.Read(999)
	assert.NoError(t, err)
}

func TestBoundsCheckedBeforeIO(t *testing.T) {
	a, _ := newTestIntArray(t, 1000)
	defer a.Close()

	_, err := a.Read(5000)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	st := a.Stats()
	assert.Zero(t, st.Hits+st.Misses, "out-of-range access must not touch the buffer")
}

func TestFlushIdempotent(t *testing.T) {
	a, path := newTestIntArray(t, 1000)
	defer a.Close()

	require.NoError(t, a.Write(10, 99))
	require.NoError(t, a.Flush())

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, a.Flush())
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOperationsAfterClose(t *testing.T) {
	a, _ := newTestIntArray(t, 100)
	require.NoError(t, a.Close())

	_, err := a.Read(0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, a.Write(0, 1), ErrClosed)
	assert.ErrorIs(t, a.Flush(), ErrClosed)
	assert.ErrorIs(t, a.Close(), ErrClosed)
}

func TestCreationParameterValidation(t *testing.T) {
	path := tempArrayPath(t)

	_, err := NewIntArray(path, 0, DefaultOptions())
	assert.Error(t, err)
	_, err = NewIntArray(path, -5, DefaultOptions())
	assert.Error(t, err)
	_, err = NewFixedTextArray(path, 100, 0, DefaultOptions())
	assert.Error(t, err)
}

func TestVarTextNotImplemented(t *testing.T) {
	_, err := NewVarTextArray(tempArrayPath(t), 100, DefaultOptions())
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestMmapRoundtripAndPersistence(t *testing.T) {
	path := tempArrayPath(t)
	opts := Options{UseMmap: true}

	a, err := NewIntArray(path, 600, opts)
	require.NoError(t, err)
	require.NoError(t, a.Write(0, 7))
	require.NoError(t, a.Write(599, -3))
	require.NoError(t, a.Close())

	a, err = NewIntArray(path, 600, opts)
	require.NoError(t, err)
	defer a.Close()
	v, err := a.Read(0)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
	v, err = a.Read(599)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), v)
}

// The reference scenario: 5000 integers, sparse writes at both ends,
// persistence across a close/reopen cycle.
func TestFiveThousandIntegerScenario(t *testing.T) {
	a, path := newTestIntArray(t, 5000)

	require.NoError(t, a.Write(4999, 42))
	require.NoError(t, a.Write(0, 7))

	v, err := a.Read(4999)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
	v, err = a.Read(1)
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, a.Close())

	a, err = NewIntArray(path, 5000, DefaultOptions())
	require.NoError(t, err)
	defer a.Close()

	v, err = a.Read(4999)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
	v, err = a.Read(0)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}
