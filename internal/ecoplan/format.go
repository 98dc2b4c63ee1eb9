package ecoplan

import (
	"html"
	"strings"
)

// RenderHTML converts plain LLM output into a small safe HTML fragment.
// Only two constructs are recognized: bullet lines become list items and
// blank lines separate paragraphs. Every piece of model text is escaped, so
// no markup from the model survives into the output.
func RenderHTML(text string) string {
	var b strings.Builder
	var para []string
	inList := false

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(para, " "))
		b.WriteString("</p>")
		para = para[:0]
	}
	closeList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if item, ok := bulletContent(line); ok {
			flushPara()
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(item))
			b.WriteString("</li>")
			continue
		}

		if line == "" {
			closeList()
			flushPara()
			continue
		}

		closeList()
		para = append(para, html.EscapeString(line))
	}

	closeList()
	flushPara()

	return b.String()
}

// bulletContent reports whether a trimmed line is a bullet and returns its
// content without the marker.
func bulletContent(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
