package writer

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWriter_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	_, err := w.Write([]byte("a\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("b\n"))
	require.NoError(t, err)

	assert.Equal(t, "a\nb\n", buf.String())
}

func TestStreamWriter_FlushDelegatesWhenSupported(t *testing.T) {
	mem := &memWriter{}
	w := NewStreamWriter(mem)

	require.NoError(t, w.Flush())
	assert.Equal(t, 1, mem.Flushes())
}

func TestStreamWriter_FlushIsNoOpOtherwise(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	assert.NoError(t, w.Flush())
}

func TestStreamWriter_CloseLeavesStreamOpen(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	_, err := w.Write([]byte("before\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Stdout and stderr must survive a logger shutdown, so Close only
	// flushes.
	_, err = buf.Write([]byte("after\n"))
	require.NoError(t, err)
	assert.Equal(t, "before\nafter\n", buf.String())
}

func TestStreamWriter_SerializesConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := w.Write([]byte(fmt.Sprintf("writer %d line\n", id))); err != nil {
					t.Error(err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 400)
	for _, line := range lines {
		assert.Regexp(t, `^writer \d line$`, string(line))
	}
}
