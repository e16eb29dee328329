package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templog/templog/core"
)

func TestDatePlaceholder_Default(t *testing.T) {
	out, diag := parseRender(t, "{date}", testEntry())

	assert.Equal(t, "1985-06-03 00:00:00", out)
	assert.Empty(t, diag)
}

func TestDatePlaceholder_CustomPattern(t *testing.T) {
	out, diag := parseRender(t, "{date: yyyy-MM-dd}", testEntry())

	assert.Equal(t, "1985-06-03", out)
	assert.Empty(t, diag)
}

func TestDatePlaceholder_InvalidPattern(t *testing.T) {
	out, diag := parseRender(t, "{date: inval'd}", testEntry())

	// Falls back to the default format permanently
	assert.Equal(t, "1985-06-03 00:00:00", out)
	assert.Equal(t, 1, strings.Count(diag, "ERROR"))
	assert.Equal(t, 1, strings.Count(diag, "inval'd"))
}

func TestTimestampPlaceholder(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"{timestamp}", "486604800"},
		{"{timestamp: seconds}", "486604800"},
		{"{timestamp: milliseconds}", "486604800000"},
		// Unknown units mean seconds, silently
		{"{timestamp: fortnights}", "486604800"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			out, diag := parseRender(t, tt.template, testEntry())
			assert.Equal(t, tt.want, out)
			assert.Empty(t, diag)
		})
	}
}

func TestUptimePlaceholder_Default(t *testing.T) {
	var sink bytes.Buffer
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	p := NewParser(WithDiagnostics(&sink), WithStartTime(start))

	e := testEntry()
	e.Time = start.Add(2*time.Hour + 30*time.Minute)

	assert.Equal(t, "02:30:00", p.Parse("{uptime}").Render(e))
	assert.Empty(t, sink.String())
}

func TestUptimePlaceholder_CustomPattern(t *testing.T) {
	var sink bytes.Buffer
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	p := NewParser(WithDiagnostics(&sink), WithStartTime(start))

	e := testEntry()
	e.Time = start.Add(2*time.Hour + 30*time.Minute)

	assert.Equal(t, "2:30", p.Parse("{uptime: H:mm}").Render(e))
	assert.Empty(t, sink.String())
}

func TestUptimePlaceholder_LargestUnitAbsorbsRemainder(t *testing.T) {
	var sink bytes.Buffer
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	p := NewParser(WithDiagnostics(&sink), WithStartTime(start))

	e := testEntry()
	e.Time = start.Add(26 * time.Hour)

	assert.Equal(t, "26:00", p.Parse("{uptime: HH:mm}").Render(e))
}

func TestUptimePlaceholder_InvalidPattern(t *testing.T) {
	var sink bytes.Buffer
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	p := NewParser(WithDiagnostics(&sink), WithStartTime(start))

	e := testEntry()
	e.Time = start.Add(2*time.Hour + 30*time.Minute)

	// Falls back to the default HH:mm:ss format
	assert.Equal(t, "02:30:00", p.Parse("{uptime: xyz}").Render(e))
	assert.Equal(t, 1, strings.Count(sink.String(), "ERROR"))
	assert.Contains(t, sink.String(), "xyz")
}

func TestPIDPlaceholder(t *testing.T) {
	out, diag := parseRender(t, "{pid}", testEntry())

	assert.Equal(t, strconv.Itoa(os.Getpid()), out)
	assert.Empty(t, diag)
}

func TestThreadPlaceholders(t *testing.T) {
	e := testEntry()
	e.ThreadName = "worker-1"
	e.ThreadID = 42

	out, diag := parseRender(t, "{thread}#{thread-id}", e)

	assert.Equal(t, "worker-1#42", out)
	assert.Empty(t, diag)
}

func TestContextPlaceholder_SingleKey(t *testing.T) {
	e := testEntry()
	e.Context = map[string]string{"pi": "3.14"}

	out, diag := parseRender(t, "{context: pi}", e)

	assert.Equal(t, "3.14", out)
	assert.Empty(t, diag)
}

func TestContextPlaceholder_MissingKeyRendersEmpty(t *testing.T) {
	out, diag := parseRender(t, "{context: pi}", testEntry())

	assert.Empty(t, out)
	assert.Empty(t, diag)
}

func TestContextPlaceholder_DefaultValue(t *testing.T) {
	e := testEntry()
	out, diag := parseRender(t, "{context: pi, -}", e)
	assert.Equal(t, "-", out)
	assert.Empty(t, diag)

	e.Context = map[string]string{"pi": "3.14"}
	out, _ = parseRender(t, "{context: pi, -}", e)
	assert.Equal(t, "3.14", out)
}

func TestContextPlaceholder_DefaultWithoutKey(t *testing.T) {
	out, diag := parseRender(t, "{context: ,-}", testEntry())

	assert.Empty(t, out)
	assert.Equal(t, 1, strings.Count(diag, "ERROR"))
	assert.Equal(t, 1, strings.Count(diag, "context"))
}

func TestContextPlaceholder_AllSortedByKey(t *testing.T) {
	e := testEntry()
	e.Context = map[string]string{"pi": "3.14", "e": "2.72"}

	out, diag := parseRender(t, "{context}", e)

	assert.Equal(t, "e=2.72, pi=3.14", out)
	assert.Empty(t, diag)
}

func TestContextPlaceholder_AllEmpty(t *testing.T) {
	out, diag := parseRender(t, "{context}", testEntry())

	assert.Empty(t, out)
	assert.Empty(t, diag)
}

func TestClassPlaceholders(t *testing.T) {
	e := testEntry()
	e.Class = "my.package.MyClass"

	tests := []struct {
		template string
		want     string
	}{
		{"{class}", "my.package.MyClass"},
		{"{class-name}", "MyClass"},
		{"{package}", "my.package"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			out, diag := parseRender(t, tt.template, e)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, diag)
		})
	}
}

func TestClassPlaceholders_GoQualifiedNames(t *testing.T) {
	e := testEntry()
	e.Class = "github.com/templog/templog/pattern"

	out, _ := parseRender(t, "{class-name}", e)
	assert.Equal(t, "pattern", out)

	out, _ = parseRender(t, "{package}", e)
	assert.Equal(t, "github.com/templog/templog", out)
}

func TestCallSitePlaceholders(t *testing.T) {
	e := testEntry()
	e.Method = "run"
	e.File = "my_file.go"
	e.Line = 42

	out, diag := parseRender(t, "{method}@{file}:{line}", e)

	assert.Equal(t, "run@my_file.go:42", out)
	assert.Empty(t, diag)
}

func TestTagPlaceholder(t *testing.T) {
	e := testEntry()
	e.Tag = "SYSTEM"

	out, diag := parseRender(t, "{tag}", e)
	assert.Equal(t, "SYSTEM", out)
	assert.Empty(t, diag)

	out, _ = parseRender(t, "{tag}", testEntry())
	assert.Empty(t, out, "untagged entries render nothing")

	out, _ = parseRender(t, "{tag: -}", testEntry())
	assert.Equal(t, "-", out, "configured default fills in for untagged entries")
}

func TestLevelPlaceholders(t *testing.T) {
	e := testEntry()
	e.Level = core.DebugLevel

	out, diag := parseRender(t, "{level}", e)
	assert.Equal(t, "DEBUG", out)
	assert.Empty(t, diag)

	out, _ = parseRender(t, "{level-code}", e)
	assert.Equal(t, "4", out)
}

func TestMessagePlaceholder_TextOnly(t *testing.T) {
	out, diag := parseRender(t, "{message}", testEntry())

	assert.Equal(t, "Hello World!", out)
	assert.Empty(t, diag)
}

func TestMessagePlaceholder_WithError(t *testing.T) {
	e := testEntry()
	e.Err = errors.New("file not found")
	e.Stack = []core.Frame{
		{Function: "github.com/acme/app.run", File: "app.go", Line: 42},
		{Function: "github.com/acme/app.main", File: "main.go", Line: 7},
	}

	out, diag := parseRender(t, "{message}", e)
	require.Empty(t, diag)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Hello World!: file not found", lines[0])
	assert.Equal(t, "\tat github.com/acme/app.run (app.go:42)", lines[1])
	assert.Equal(t, "\tat github.com/acme/app.main (main.go:7)", lines[2])
}

func TestMessagePlaceholder_ErrorWithoutMessage(t *testing.T) {
	e := testEntry()
	e.Message = ""
	e.Err = errors.New("file not found")

	out, _ := parseRender(t, "{message}", e)

	assert.Equal(t, "file not found", out)
}

func TestMessageOnlyPlaceholder(t *testing.T) {
	e := testEntry()
	e.Err = errors.New("file not found")

	out, diag := parseRender(t, "{message-only}", e)

	assert.Equal(t, "Hello World!", out)
	assert.Empty(t, diag)
}

func TestExceptionPlaceholder(t *testing.T) {
	e := testEntry()
	e.Err = errors.New("file not found")
	e.Stack = []core.Frame{
		{Function: "github.com/acme/app.run", File: "app.go", Line: 42},
	}

	out, diag := parseRender(t, "{exception}", e)
	require.Empty(t, diag)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "file not found", lines[0])
	assert.Equal(t, "\tat github.com/acme/app.run (app.go:42)", lines[1])
}

func TestExceptionPlaceholder_NoError(t *testing.T) {
	out, diag := parseRender(t, "{exception}", testEntry())

	assert.Empty(t, out)
	assert.Empty(t, diag)
}

func TestExceptionPlaceholder_StripPrefixes(t *testing.T) {
	var sink bytes.Buffer
	p := NewParser(WithDiagnostics(&sink), WithStripPrefixes("github.com/templog/templog", "internal/poll"))

	e := testEntry()
	e.Err = errors.New("file not found")
	e.Stack = []core.Frame{
		{Function: "github.com/templog/templog/logger.(*Logger).log", File: "logger.go", Line: 17},
		{Function: "github.com/acme/app.run", File: "app.go", Line: 42},
		{Function: "internal/poll.(*FD).Read", File: "fd_unix.go", Line: 163},
	}

	out := p.Parse("{exception}").Render(e)

	assert.NotContains(t, out, "templog")
	assert.NotContains(t, out, "internal/poll")
	assert.Contains(t, out, "\tat github.com/acme/app.run (app.go:42)")
	assert.Empty(t, sink.String())
}

func TestExceptionPlaceholder_CauseChain(t *testing.T) {
	e := testEntry()
	e.Message = ""
	e.Err = fmt.Errorf("open config: %w", errors.New("permission denied"))

	out, _ := parseRender(t, "{exception}", e)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "open config: permission denied", lines[0])
	assert.Equal(t, "Caused by: permission denied", lines[1])
}
