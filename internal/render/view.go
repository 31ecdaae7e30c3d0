// Package render lowers a corpus.Corpus into the on-disk reference
// formats: a structured XML tree, a Doxygen-compatible tagfile, an HTML
// page set, and an AsciiDoc document. Each renderer walks a flat
// symbolView built once per symbol — the doc tree, type spellings, and
// child lists are all resolved to plain strings up front. The XML,
// tagfile and HTML renderers hand it to a template; AsciiDoc writes it
// directly.
package render

import (
	"strings"

	"github.com/corpusdoc/cxxref/internal/corpus"
	"github.com/corpusdoc/cxxref/internal/doc"
	"github.com/corpusdoc/cxxref/internal/info"
	"github.com/corpusdoc/cxxref/internal/model"
)

// symbolView is the flattened template model for one symbol.
type symbolView struct {
	ID        string
	Kind      string
	Name      string
	Qualified string
	Access    string
	Doc       docView
	Type      string // Typedef/Variable/Field type spelling, empty otherwise
	Return    string // Function/Guide return-type spelling
	Params    []paramView
	Children  []symbolView
}

type paramView struct {
	Name string
	Type string
}

// docView is the doc.Comment flattened to XML-ready text. Markdown
// structure is not re-rendered into nested elements here; paragraphs are
// joined with blank lines, matching the tagfile format's plain-text
// <detaileddescription> convention. The XML renderer additionally nests
// the structured command blocks (brief, params, returns, ...).
type docView struct {
	Brief   string
	Detail  string
	Params  []fieldView
	Returns []string
	Throws  []fieldView
	Sees    []string
}

type fieldView struct {
	Name string
	Text string
}

// buildSymbolView flattens i (and, recursively, its Corpus children) into
// a symbolView rooted at i.
func buildSymbolView(c *corpus.Corpus, i info.Info) symbolView {
	common := i.CommonInfo()
	v := symbolView{
		ID:        common.ID.String(),
		Kind:      viewKind(i),
		Name:      common.Name,
		Qualified: c.QualifiedName(i),
		Access:    accessString(common.Access),
		Doc:       buildDocView(common.Doc),
	}

	switch x := i.(type) {
	case *info.TypedefInfo:
		v.Type = typeSpelling(x.Type)
	case *info.VariableInfo:
		v.Type = typeSpelling(x.Type)
	case *info.FieldInfo:
		v.Type = typeSpelling(x.Type)
	case *info.FunctionInfo:
		v.Return = typeSpelling(x.Return)
		v.Params = paramViews(x.Params)
	case *info.GuideInfo:
		v.Return = typeSpelling(x.Deduced)
		v.Params = paramViews(x.Params)
	}

	_ = c.Traverse(common.ID, func(child info.Info) error {
		v.Children = append(v.Children, buildSymbolView(c, child))
		return nil
	})
	return v
}

// viewKind maps i to the lowercase element name the renderers key their
// per-kind templates on. Several info.Kind values (KindRecord especially)
// cover more than one spelling in the source language, so this dispatches
// on the concrete variant rather than on Common.Kind alone.
func viewKind(i info.Info) string {
	switch x := i.(type) {
	case *info.NamespaceInfo:
		return "namespace"
	case *info.RecordInfo:
		switch x.KeyKind {
		case info.KeyStruct:
			return "struct"
		case info.KeyUnion:
			return "union"
		default:
			return "class"
		}
	case *info.FunctionInfo:
		switch x.Class {
		case info.FunctionCtor:
			return "constructor"
		case info.FunctionDtor:
			return "destructor"
		case info.FunctionConv:
			return "conversion"
		default:
			return "function"
		}
	case *info.EnumInfo:
		return "enum"
	case *info.EnumConstantInfo:
		return "enum-constant"
	case *info.TypedefInfo:
		return "typedef"
	case *info.VariableInfo:
		return "variable"
	case *info.FieldInfo:
		return "field"
	case *info.FriendInfo:
		return "friend"
	case *info.GuideInfo:
		return "guide"
	case *info.ConceptInfo:
		return "concept"
	case *info.NamespaceAliasInfo:
		return "namespace-alias"
	case *info.UsingInfo:
		return "using"
	case *info.OverloadsInfo:
		return "overloads"
	case *info.SpecializationInfo:
		return "specialization"
	default:
		return ""
	}
}

func paramViews(params []info.Param) []paramView {
	out := make([]paramView, 0, len(params))
	for _, p := range params {
		out = append(out, paramView{Name: p.Name, Type: typeSpelling(p.Type)})
	}
	return out
}

func accessString(a info.Access) string {
	switch a {
	case info.AccessPublic:
		return "public"
	case info.AccessProtected:
		return "protected"
	case info.AccessPrivate:
		return "private"
	default:
		return ""
	}
}

// typeSpelling renders t back to C++ syntax. Only the written spelling of
// leaf names is retained; the renderer does not re-derive fully
// qualified spellings for every nested type.
func typeSpelling(t model.Type) string {
	if t == nil {
		return ""
	}
	cv := ""
	if t.Common().IsConst {
		cv += "const "
	}
	if t.Common().IsVolatile {
		cv += "volatile "
	}
	switch x := t.(type) {
	case *model.NamedType:
		return cv + model.QualifiedText(x.Name)
	case *model.DecltypeType:
		return cv + "decltype(" + x.Operand.Written + ")"
	case *model.AutoType:
		if x.IsDecltypeAuto {
			return cv + "decltype(auto)"
		}
		if x.Constraint != nil {
			return cv + model.QualifiedText(x.Constraint.Name) + " auto"
		}
		return cv + "auto"
	case *model.LValueReferenceType:
		return typeSpelling(x.Pointee) + "&"
	case *model.RValueReferenceType:
		return typeSpelling(x.Pointee) + "&&"
	case *model.PointerType:
		return cv + typeSpelling(x.Pointee) + "*"
	case *model.MemberPointerType:
		return cv + typeSpelling(x.Pointee) + " " + typeSpelling(x.Parent) + "::*"
	case *model.ArrayType:
		if x.HasBounds {
			return typeSpelling(x.Element) + "[" + x.Bounds.Written + "]"
		}
		return typeSpelling(x.Element) + "[]"
	case *model.FunctionType:
		var params []string
		for _, p := range x.Params {
			params = append(params, typeSpelling(p))
		}
		sig := typeSpelling(x.Return) + "(" + strings.Join(params, ", ") + ")"
		if x.IsNoexcept {
			sig += " noexcept"
		}
		return sig
	default:
		return ""
	}
}

func buildDocView(c *doc.Comment) docView {
	if c == nil {
		return docView{}
	}
	v := docView{}
	if c.Brief != nil {
		v.Brief = inlineText(c.Brief.Children)
	}
	var detail []string
	for _, b := range c.Document {
		if s := blockText(b); s != "" {
			detail = append(detail, s)
		}
	}
	v.Detail = strings.Join(detail, "\n\n")
	for _, p := range c.Params {
		v.Params = append(v.Params, fieldView{Name: p.Name, Text: inlineText(p.Children)})
	}
	for _, r := range c.Returns {
		v.Returns = append(v.Returns, inlineText(r.Children))
	}
	for _, t := range c.Throws {
		v.Throws = append(v.Throws, fieldView{Name: t.Exception, Text: inlineText(t.Children)})
	}
	for _, s := range c.Sees {
		v.Sees = append(v.Sees, inlineText(s.Children))
	}
	return v
}

func blockText(b doc.Block) string {
	switch x := b.(type) {
	case *doc.Paragraph:
		return inlineText(x.Children)
	case *doc.Heading:
		return inlineText(x.Children)
	case *doc.Code:
		return x.Text
	case *doc.List:
		var lines []string
		for _, item := range x.Items {
			for _, child := range item.Children {
				lines = append(lines, "- "+blockText(child))
			}
		}
		return strings.Join(lines, "\n")
	case *doc.Quote:
		var lines []string
		for _, child := range x.Children {
			lines = append(lines, blockText(child))
		}
		return strings.Join(lines, "\n")
	case *doc.Admonition:
		var lines []string
		for _, child := range x.Children {
			lines = append(lines, blockText(child))
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

func inlineText(children []doc.Inline) string {
	var b strings.Builder
	for _, in := range children {
		switch x := in.(type) {
		case *doc.Text:
			b.WriteString(x.Text)
		case *doc.InlineCodeSpan:
			b.WriteString(x.Text)
		case *doc.Strong:
			b.WriteString(inlineText(x.Children))
		case *doc.Emph:
			b.WriteString(inlineText(x.Children))
		case *doc.Highlight:
			b.WriteString(inlineText(x.Children))
		case *doc.Link:
			b.WriteString(inlineText(x.Children))
		case *doc.Reference:
			b.WriteString(x.Text)
		case *doc.CopyDetails:
			b.WriteString(x.Text)
		case *doc.Image:
			b.WriteString(x.Alt)
		case *doc.LineBreak, *doc.SoftBreak:
			b.WriteString(" ")
		case *doc.Subscript:
			b.WriteString(inlineText(x.Children))
		case *doc.Superscript:
			b.WriteString(inlineText(x.Children))
		case *doc.Strikethrough:
			b.WriteString(inlineText(x.Children))
		case *doc.InlineMath:
			b.WriteString(x.Text)
		}
	}
	return b.String()
}
