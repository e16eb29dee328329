package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	require.NotNil(t, e1)

	// Dirty the entry, return it, and make sure the next one is clean
	e1.Message = "test"
	e1.Level = ErrorLevel
	e1.Context = map[string]string{"k": "v"}
	PutEntry(e1)

	e2 := GetEntry()
	require.NotNil(t, e2)
	assert.Empty(t, e2.Message)
	assert.Equal(t, OffLevel, e2.Level)
	assert.Nil(t, e2.Context)
}

func TestCallSite(t *testing.T) {
	class, method, file, line := CallSite(0)

	assert.Equal(t, "github.com/templog/templog/core", class)
	assert.Equal(t, "TestCallSite", method)
	assert.True(t, strings.HasSuffix(file, "entry_test.go"), "file = %q", file)
	assert.Greater(t, line, 0)
}

func TestCallSite_OutOfRange(t *testing.T) {
	class, method, file, line := CallSite(1000)

	assert.Empty(t, class)
	assert.Empty(t, method)
	assert.Empty(t, file)
	assert.Zero(t, line)
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		member string
	}{
		{"my.package.MyClass", "my.package", "MyClass"},
		{"github.com/x/pkg.Func", "github.com/x/pkg", "Func"},
		{"github.com/x/pkg.(*T).Do", "github.com/x/pkg.(*T)", "Do"},
		{"main.main", "main", "main"},
		{"github.com/nodots", "github.com/nodots", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, member := splitQualified(tt.name)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.member, member)
		})
	}
}

func TestCaptureStack(t *testing.T) {
	frames := CaptureStack(0)

	require.NotEmpty(t, frames)
	assert.Contains(t, frames[0].Function, "TestCaptureStack")
	assert.True(t, strings.HasSuffix(frames[0].File, "entry_test.go"), "file = %q", frames[0].File)
	assert.Greater(t, frames[0].Line, 0)
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}

func BenchmarkCallSite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CallSite(0)
	}
}
