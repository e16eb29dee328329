// Package pattern compiles compact format templates into immutable,
// concurrency-safe renderers for log entries.
//
// A template mixes literal text with placeholder regions in curly
// braces:
//
//	{date: HH:mm:ss} [{level}] {class-name}.{method}(): {message}
//
// A region holds a placeholder name, an optional argument after the
// first colon, and optional style options after a pipe:
//
//	{level | min-size=5}
//	{{class-name}.{method}()|min-size=30}
//
// Regions nest: a region whose body contains braces is compiled as a
// sub-pattern, and its style options apply to the combined output.
// Unknown names stay in the output as literal text, and the literal
// characters {, } and | are available as the placeholders
// opening-curly-bracket, closing-curly-bracket and pipe.
//
// Parsing never fails. Unbalanced braces, unknown style options,
// malformed option values and invalid date or timespan patterns are
// each reported once through the parser's diagnostics writer
// (os.Stderr unless redirected with WithDiagnostics), and the
// offending part degrades to literal text or a built-in default. A bad
// template must never take the logging pipeline down with it.
//
// Compiled templates are immutable node trees. Rendering walks the
// tree with a type switch, writes into pooled buffers, and never
// mutates the entry, so a single Template may render entries from any
// number of goroutines concurrently. Required reports which entry
// fields a template actually reads, letting the facade skip call-site
// resolution and stack capture for templates that render neither.
package pattern
