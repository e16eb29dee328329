package pattern

import "strings"

// tokenFactory builds the node for one registry entry. arg is the text
// after the first colon with surrounding space trimmed; hasArg tells a
// missing argument apart from an empty one.
type tokenFactory func(p *Parser, arg string, hasArg bool) node

// tokenTable is the static placeholder registry. Adding a placeholder
// means adding one row here plus its render and required-data cases.
var tokenTable = map[string]tokenFactory{
	"date":                  newDateToken,
	"timestamp":             newTimestampToken,
	"uptime":                newUptimeToken,
	"pid":                   newPIDToken,
	"thread":                newThreadToken,
	"thread-id":             newThreadIDToken,
	"context":               newContextToken,
	"class":                 newClassToken,
	"class-name":            newClassNameToken,
	"package":               newPackageToken,
	"method":                newMethodToken,
	"file":                  newFileToken,
	"line":                  newLineToken,
	"tag":                   newTagToken,
	"level":                 newLevelToken,
	"level-code":            newLevelCodeToken,
	"message":               newMessageToken,
	"message-only":          newMessageOnlyToken,
	"exception":             newExceptionToken,
	"opening-curly-bracket": newOpeningBracketToken,
	"closing-curly-bracket": newClosingBracketToken,
	"pipe":                  newPipeToken,
}

func newDateToken(p *Parser, arg string, hasArg bool) node {
	if !hasArg || arg == "" {
		return dateNode{format: defaultDateFormat}
	}
	f, err := compileDateFormat(arg)
	if err != nil {
		p.errorf("Invalid date pattern %q, falling back to default format", arg)
		return dateNode{format: defaultDateFormat}
	}
	return dateNode{format: f}
}

func newTimestampToken(_ *Parser, arg string, _ bool) node {
	// Any unit other than milliseconds means seconds
	return timestampNode{millis: strings.EqualFold(arg, "milliseconds")}
}

func newUptimeToken(p *Parser, arg string, hasArg bool) node {
	format := defaultSpanFormat
	if hasArg && arg != "" {
		f, err := compileSpanFormat(arg)
		if err != nil {
			p.errorf("Invalid timespan pattern %q, falling back to default format", arg)
		} else {
			format = f
		}
	}
	return uptimeNode{format: format, start: p.start}
}

func newPIDToken(*Parser, string, bool) node {
	return pidNode{}
}

func newThreadToken(*Parser, string, bool) node {
	return threadNameNode{}
}

func newThreadIDToken(*Parser, string, bool) node {
	return threadIDNode{}
}

func newContextToken(p *Parser, arg string, hasArg bool) node {
	if !hasArg || arg == "" {
		return contextAllNode{}
	}
	key, fallback, hasFallback := strings.Cut(arg, ",")
	key = strings.TrimSpace(key)
	if !hasFallback {
		return contextNode{key: key}
	}
	if key == "" {
		p.errorf("Key is missing for context placeholder with default value %q", strings.TrimSpace(fallback))
		return emptyNode{}
	}
	return contextNode{key: key, fallback: strings.TrimSpace(fallback)}
}

func newClassToken(*Parser, string, bool) node {
	return classNode{}
}

func newClassNameToken(*Parser, string, bool) node {
	return classNameNode{}
}

func newPackageToken(*Parser, string, bool) node {
	return packageNode{}
}

func newMethodToken(*Parser, string, bool) node {
	return methodNode{}
}

func newFileToken(*Parser, string, bool) node {
	return fileNode{}
}

func newLineToken(*Parser, string, bool) node {
	return lineNode{}
}

func newTagToken(_ *Parser, arg string, _ bool) node {
	return tagNode{fallback: arg}
}

func newLevelToken(*Parser, string, bool) node {
	return levelNode{}
}

func newLevelCodeToken(*Parser, string, bool) node {
	return levelCodeNode{}
}

func newMessageToken(p *Parser, _ string, _ bool) node {
	return messageNode{strip: p.strip}
}

func newMessageOnlyToken(*Parser, string, bool) node {
	return messageOnlyNode{}
}

func newExceptionToken(p *Parser, _ string, _ bool) node {
	return exceptionNode{strip: p.strip}
}

func newOpeningBracketToken(*Parser, string, bool) node {
	return literalNode("{")
}

func newClosingBracketToken(*Parser, string, bool) node {
	return literalNode("}")
}

func newPipeToken(*Parser, string, bool) node {
	return literalNode("|")
}
