package doc

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParser is shared across all comment parses; goldmark's Parser is
// safe for concurrent use once built (each TU's extractor parses its own
// declarations' comments, per the §5 concurrency model).
var markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// rawCommand is one recognized Doxygen-style command line (and its
// continuation lines) carved out of a comment body before the remainder is
// handed to the markdown parser.
type rawCommand struct {
	Name string // without the leading @ or \
	Arg  string // first whitespace-delimited token after the command, if any; for @param, a leading [dir] is kept with the name ("[in] x")
	Body string // remaining text, including any continuation lines
}

// blockCommandNames are the commands that introduce their own block and
// whose body is itself markdown, parsed independently from the main body.
var blockCommandNames = map[string]bool{
	"brief": true, "param": true, "tparam": true,
	"returns": true, "return": true,
	"throws": true, "throw": true,
	"pre": true, "post": true,
	"see": true, "relates": true, "related": true,
}

var commandLineRe = regexp.MustCompile(`^[ \t]*[@\\]([A-Za-z][A-Za-z0-9]*)\b[ \t]*(.*)$`)

// splitCommands separates recognized command blocks from the freeform
// remainder of a comment body. Continuation lines (non-blank lines that do
// not themselves start a new recognized command) are folded into the
// preceding command's Body.
func splitCommands(body string) (remainder string, commands []rawCommand) {
	lines := strings.Split(body, "\n")
	var rem []string
	var cur *rawCommand
	flush := func() {
		if cur != nil {
			cur.Body = strings.TrimSpace(cur.Body)
			commands = append(commands, *cur)
			cur = nil
		}
	}
	for _, line := range lines {
		if m := commandLineRe.FindStringSubmatch(line); m != nil && blockCommandNames[strings.ToLower(m[1])] {
			flush()
			name := strings.ToLower(m[1])
			rest := m[2]
			arg, text := "", rest
			if name == "param" || name == "tparam" || name == "throws" || name == "throw" || name == "relates" || name == "related" {
				trimmed := strings.TrimSpace(rest)
				dirPrefix := ""
				if name == "param" && strings.HasPrefix(trimmed, "[") {
					if j := strings.Index(trimmed, "]"); j >= 0 {
						dirPrefix = trimmed[:j+1] + " "
						trimmed = strings.TrimSpace(trimmed[j+1:])
					}
				}
				fields := strings.SplitN(trimmed, " ", 2)
				arg = dirPrefix + fields[0]
				if len(fields) > 1 {
					text = fields[1]
				} else {
					text = ""
				}
			}
			cur = &rawCommand{Name: name, Arg: arg, Body: text}
			continue
		}
		if cur != nil {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				flush()
				rem = append(rem, line)
				continue
			}
			cur.Body += "\n" + line
			continue
		}
		rem = append(rem, line)
	}
	flush()
	return strings.Join(rem, "\n"), commands
}

// refPattern matches an inline `@ref name` or `\ref name` command;
// copydetailsPattern matches `@copydetails name` / `\copydetails name`.
var refPattern = regexp.MustCompile(`[@\\]ref\s+([A-Za-z_][A-Za-z0-9_:]*)`)
var copydetailsPattern = regexp.MustCompile(`[@\\]copydetails\s+([A-Za-z_][A-Za-z0-9_:]*)`)

// Resolver looks up a qualified name written in a doc comment and returns
// the symbol it names, if any. The extractor supplies the implementation
// backed by the Corpus-in-progress; outside of extraction (e.g. unit
// tests) a nil Resolver is treated as "nothing resolves".
type Resolver interface {
	Resolve(qualifiedName string) (id [20]byte, ok bool)
}

// parseMarkdown runs body through goldmark and lowers the resulting AST
// into our Block tree, resolving `@ref`/`@copydetails` tokens embedded in
// text runs along the way.
func parseMarkdown(body string, resolver Resolver) []Block {
	source := []byte(body)
	root := markdownParser.Parse(text.NewReader(source))
	return lowerBlockChildren(root, source, resolver)
}

func lowerBlockChildren(parent ast.Node, source []byte, r Resolver) []Block {
	var out []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if b := lowerBlock(n, source, r); b != nil {
			out = append(out, b)
		}
	}
	return out
}

func lowerBlock(n ast.Node, source []byte, r Resolver) Block {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		return &Paragraph{Children: lowerInlineChildren(n, source, r)}
	case ast.KindHeading:
		h := n.(*ast.Heading)
		return &Heading{Level: h.Level, Children: lowerInlineChildren(n, source, r)}
	case ast.KindThematicBreak:
		return &ThematicBreak{}
	case ast.KindBlockquote:
		return &Quote{Children: lowerBlockChildren(n, source, r)}
	case ast.KindList:
		l := n.(*ast.List)
		items := make([]*ListItem, 0)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			items = append(items, &ListItem{Children: lowerBlockChildren(c, source, r)})
		}
		return &List{Ordered: l.IsOrdered(), Start: l.Start, Items: items}
	case ast.KindCodeBlock:
		cb := n.(*ast.CodeBlock)
		return &Code{Text: stripCommonMargin(linesText(cb.Lines(), source))}
	case ast.KindFencedCodeBlock:
		fcb := n.(*ast.FencedCodeBlock)
		lang := ""
		if l := fcb.Language(source); l != nil {
			lang = string(l)
		}
		if kind, ok := admonitionKindForLanguage(lang); ok {
			return &Admonition{Kind: kind, Children: []Block{&Paragraph{Children: []Inline{&Text{Text: stripCommonMargin(linesText(fcb.Lines(), source))}}}}}
		}
		return &Code{Language: lang, Text: stripCommonMargin(linesText(fcb.Lines(), source))}
	case ast.KindHTMLBlock:
		hb := n.(*ast.HTMLBlock)
		return &Code{Language: "html", Text: linesText(hb.Lines(), source)}
	default:
		switch n.Kind().String() {
		case "Table":
			return lowerTable(n, source, r)
		}
		// Unknown block kinds degrade to a paragraph over their inline
		// content rather than being silently dropped.
		if n.FirstChild() != nil && n.FirstChild().NextSibling() == nil && isInlineKind(n.FirstChild()) {
			return &Paragraph{Children: lowerInlineChildren(n, source, r)}
		}
		return nil
	}
}

func isInlineKind(n ast.Node) bool {
	switch n.Kind() {
	case ast.KindText, ast.KindString, ast.KindCodeSpan, ast.KindEmphasis, ast.KindLink, ast.KindImage, ast.KindAutoLink, ast.KindRawHTML:
		return true
	default:
		return false
	}
}

func lowerTable(n ast.Node, source []byte, r Resolver) Block {
	var header TableRow
	var rows []TableRow
	first := true
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells [][]Inline
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, lowerInlineChildren(cell, source, r))
		}
		if first {
			header = TableRow{Cells: cells}
			first = false
			continue
		}
		rows = append(rows, TableRow{Cells: cells})
	}
	return &Table{Header: header, Rows: rows}
}

func admonitionKindForLanguage(lang string) (AdmonitionKind, bool) {
	switch strings.ToLower(lang) {
	case "note":
		return AdmonitionNote, true
	case "tip":
		return AdmonitionTip, true
	case "important":
		return AdmonitionImportant, true
	case "warning":
		return AdmonitionWarning, true
	case "caution":
		return AdmonitionCaution, true
	default:
		return 0, false
	}
}

func linesText(lines *text.Segments, source []byte) string {
	if lines == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// stripCommonMargin removes the minimum common leading whitespace shared by
// every non-blank line.
func stripCommonMargin(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	margin := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if margin == -1 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return s
	}
	for i, l := range lines {
		if len(l) >= margin {
			lines[i] = l[margin:]
		} else {
			lines[i] = strings.TrimLeft(l, " \t")
		}
	}
	return strings.Join(lines, "\n")
}

func lowerInlineChildren(parent ast.Node, source []byte, r Resolver) []Inline {
	var out []Inline
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, lowerInline(n, source, r)...)
	}
	return out
}

// lowerInline returns zero or more Inline nodes for n: most nodes lower to
// exactly one, but a Text node may split into several when it contains an
// `@ref`/`@copydetails` token.
func lowerInline(n ast.Node, source []byte, r Resolver) []Inline {
	switch n.Kind() {
	case ast.KindText:
		t := n.(*ast.Text)
		value := string(t.Segment.Value(source))
		nodes := splitReferences(value, r)
		if t.HardLineBreak() {
			nodes = append(nodes, &LineBreak{})
		} else if t.SoftLineBreak() {
			nodes = append(nodes, &SoftBreak{})
		}
		return nodes
	case ast.KindString:
		s := n.(*ast.String)
		return splitReferences(string(s.Value), r)
	case ast.KindCodeSpan:
		return []Inline{&InlineCodeSpan{Text: codeSpanText(n, source)}}
	case ast.KindEmphasis:
		e := n.(*ast.Emphasis)
		children := lowerInlineChildren(n, source, r)
		if e.Level >= 2 {
			return []Inline{&Strong{Children: children}}
		}
		return []Inline{&Emph{Children: children}}
	case ast.KindLink:
		l := n.(*ast.Link)
		return []Inline{&Link{Destination: string(l.Destination), Title: string(l.Title), Children: lowerInlineChildren(n, source, r)}}
	case ast.KindAutoLink:
		al := n.(*ast.AutoLink)
		label := string(al.Label(source))
		return []Inline{&Link{Destination: string(al.URL(source)), Children: []Inline{&Text{Text: label}}}}
	case ast.KindImage:
		im := n.(*ast.Image)
		return []Inline{&Image{Destination: string(im.Destination), Alt: plainText(lowerInlineChildren(n, source, r))}}
	case ast.KindRawHTML:
		hb := n.(*ast.RawHTML)
		return []Inline{&Text{Text: linesText(hb.Segments, source)}}
	default:
		switch n.Kind().String() {
		case "Strikethrough":
			return []Inline{&Strikethrough{Children: lowerInlineChildren(n, source, r)}}
		}
		return lowerInlineChildren(n, source, r)
	}
}

func codeSpanText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func plainText(inlines []Inline) string {
	var sb strings.Builder
	var walk func([]Inline)
	walk = func(ns []Inline) {
		for _, n := range ns {
			switch v := n.(type) {
			case *Text:
				sb.WriteString(v.Text)
			case *Strong:
				walk(v.Children)
			case *Emph:
				walk(v.Children)
			case *Link:
				walk(v.Children)
			case *Highlight:
				walk(v.Children)
			case *Subscript:
				walk(v.Children)
			case *Superscript:
				walk(v.Children)
			case *Strikethrough:
				walk(v.Children)
			}
		}
	}
	walk(inlines)
	return sb.String()
}

// splitReferences scans plain text for `@ref`/`@copydetails` tokens and
// splices Reference/CopyDetails nodes in among the surrounding Text nodes.
func splitReferences(value string, r Resolver) []Inline {
	type match struct {
		start, end int
		isRef      bool
		name       string
	}
	var matches []match
	for _, m := range refPattern.FindAllStringSubmatchIndex(value, -1) {
		matches = append(matches, match{start: m[0], end: m[1], isRef: true, name: value[m[2]:m[3]]})
	}
	for _, m := range copydetailsPattern.FindAllStringSubmatchIndex(value, -1) {
		matches = append(matches, match{start: m[0], end: m[1], isRef: false, name: value[m[2]:m[3]]})
	}
	if len(matches) == 0 {
		if value == "" {
			return nil
		}
		return []Inline{&Text{Text: value}}
	}
	// stable order by position
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j-1].start > matches[j].start; j-- {
			matches[j-1], matches[j] = matches[j], matches[j-1]
		}
	}
	var out []Inline
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			continue // overlapping match, keep the earlier one
		}
		if m.start > pos {
			out = append(out, &Text{Text: value[pos:m.start]})
		}
		id, ok := [20]byte{}, false
		if r != nil {
			id, ok = r.Resolve(m.name)
		}
		if m.isRef {
			ref := &Reference{Text: m.name}
			if ok {
				ref.ID = id
			}
			out = append(out, ref)
		} else {
			cd := &CopyDetails{Text: m.name}
			if ok {
				cd.ID = id
			}
			out = append(out, cd)
		}
		pos = m.end
	}
	if pos < len(value) {
		out = append(out, &Text{Text: value[pos:]})
	}
	return out
}
