package ui

import "strings"

// ParseCSS parses a primitive stylesheet: ".class" and "#id" selectors with
// "key: value;" declarations. No combinators, no @rules; blocks with other
// selectors are skipped. Later rules override earlier ones for the same
// selector.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	content = stripComments(content)
	for {
		open := strings.Index(content, "{")
		if open == -1 {
			return sheet
		}
		selector := strings.TrimSpace(content[:open])
		close := matchingBrace(content, open)
		if close == -1 {
			return sheet
		}
		if len(selector) >= 2 && (selector[0] == '.' || selector[0] == '#') {
			sheet.Rules = append(sheet.Rules, Rule{
				Selector: selector,
				Props:    parseDeclarations(content[open+1 : close]),
			})
		}
		content = content[close+1:]
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func matchingBrace(s string, open int) int {
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		colon := strings.Index(decl, ":")
		if colon <= 0 {
			continue
		}
		key := strings.TrimSpace(decl[:colon])
		val := strings.TrimSpace(decl[colon+1:])
		if key != "" {
			props[key] = val
		}
	}
	return props
}
