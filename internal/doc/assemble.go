package doc

import "strings"

// Assemble turns a declaration's raw comment text into a Comment: it
// carves out recognized Doxygen-style commands, parses the remaining body
// as Markdown, promotes a brief summary when none was written explicitly,
// and resolves `@ref`/`@copydetails` tokens through resolver.
//
// A nil resolver is valid; every reference simply fails to resolve and is
// recorded with a zero ID, which the render layer treats as unresolved.
func Assemble(raw string, resolver Resolver) *Comment {
	body, commands := splitCommands(raw)
	c := &Comment{}

	for _, cmd := range commands {
		switch cmd.Name {
		case "brief":
			c.Brief = &Brief{Children: parseInlineText(cmd.Body, resolver)}
		case "param":
			dir, name := splitDirection(cmd.Arg)
			c.Params = append(c.Params, &Param{Name: name, Direction: dir, Children: parseInlineText(cmd.Body, resolver)})
		case "tparam":
			c.TParams = append(c.TParams, &TParam{Name: cmd.Arg, Children: parseInlineText(cmd.Body, resolver)})
		case "returns", "return":
			c.Returns = append(c.Returns, &Returns{Children: parseInlineText(cmd.Body, resolver)})
		case "throws", "throw":
			c.Throws = append(c.Throws, &Throws{Exception: cmd.Arg, Children: parseInlineText(cmd.Body, resolver)})
		case "pre":
			c.Preconditions = append(c.Preconditions, &Precondition{Children: parseInlineText(cmd.Body, resolver)})
		case "post":
			c.Postconditions = append(c.Postconditions, &Postcondition{Children: parseInlineText(cmd.Body, resolver)})
		case "see":
			c.Sees = append(c.Sees, &See{Children: parseInlineText(cmd.Body, resolver)})
		case "relates":
			if cmd.Arg != "" {
				c.Relates = append(c.Relates, cmd.Arg)
			}
		case "related":
			if cmd.Arg != "" {
				c.Related = append(c.Related, cmd.Arg)
			}
		}
	}

	c.Document = parseMarkdown(body, resolver)

	if c.Brief == nil {
		c.Brief, c.Document = promoteBrief(c.Document)
	}

	return c
}

// splitDirection parses a `@param` argument of the form `name`,
// `[in] name`, `[out] name`, or `[in,out] name`.
func splitDirection(arg string) (direction, name string) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "[") {
		if i := strings.Index(arg, "]"); i >= 0 {
			direction = strings.TrimSpace(arg[1:i])
			name = strings.TrimSpace(arg[i+1:])
			return direction, name
		}
	}
	return "", arg
}

// parseInlineText parses a short command body as Markdown and flattens it
// to a single run of inline nodes, discarding any block structure a
// multi-paragraph body would otherwise produce.
func parseInlineText(body string, resolver Resolver) []Inline {
	blocks := parseMarkdown(body, resolver)
	var out []Inline
	for i, b := range blocks {
		if i > 0 {
			out = append(out, &SoftBreak{})
		}
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p.Children...)
		}
	}
	return out
}

// promoteBrief takes the first paragraph of doc as the Brief, returning
// the remaining blocks unchanged. If doc does not start with a
// paragraph, no brief is promoted.
func promoteBrief(blocks []Block) (*Brief, []Block) {
	if len(blocks) == 0 {
		return nil, blocks
	}
	p, ok := blocks[0].(*Paragraph)
	if !ok {
		return nil, blocks
	}
	return &Brief{Children: p.Children}, blocks[1:]
}
