// Package doc is the structured doc-comment model produced from raw
// comment text. Block and inline nodes are tagged sums, mirroring the
// model package's Type/Name variants.
package doc

import "github.com/corpusdoc/cxxref/internal/symbolid"

// BlockKind tags which variant a Block value holds.
type BlockKind int

const (
	BlockInvalid BlockKind = iota
	BlockParagraph
	BlockHeading
	BlockList
	BlockListItem
	BlockCode
	BlockQuote
	BlockTable
	BlockDefinitionList
	BlockAdmonition
	BlockMath
	BlockThematicBreak
	BlockFootnoteDefinition
	BlockBrief
	BlockReturns
	BlockParam
	BlockTParam
	BlockThrows
	BlockSee
	BlockPrecondition
	BlockPostcondition
)

// Block is the sealed interface for block-level doc nodes.
type Block interface {
	BlockKind() BlockKind
	isBlock()
}

// Inline is the sealed interface for inline (text-run) doc nodes.
type InlineKind int

const (
	InlineInvalid InlineKind = iota
	InlineText
	InlineCode
	InlineStrong
	InlineEmph
	InlineLink
	InlineReference
	InlineCopyDetails
	InlineImage
	InlineHighlight
	InlineLineBreak
	InlineSoftBreak
	InlineSubscript
	InlineSuperscript
	InlineStrikethrough
	InlineFootnoteReference
	InlineMath
)

type Inline interface {
	InlineKind() InlineKind
	isInline()
}

// --- Block variants ---

type Paragraph struct{ Children []Inline }

func (*Paragraph) BlockKind() BlockKind { return BlockParagraph }
func (*Paragraph) isBlock()             {}

type Heading struct {
	Level    int
	Children []Inline
}

func (*Heading) BlockKind() BlockKind { return BlockHeading }
func (*Heading) isBlock()             {}

type List struct {
	Ordered bool
	Start   int
	Items   []*ListItem
}

func (*List) BlockKind() BlockKind { return BlockList }
func (*List) isBlock()             {}

type ListItem struct {
	Children []Block
}

func (*ListItem) BlockKind() BlockKind { return BlockListItem }
func (*ListItem) isBlock()             {}

type Code struct {
	Language string
	Text     string
}

func (*Code) BlockKind() BlockKind { return BlockCode }
func (*Code) isBlock()             {}

type Quote struct{ Children []Block }

func (*Quote) BlockKind() BlockKind { return BlockQuote }
func (*Quote) isBlock()             {}

type TableRow struct{ Cells [][]Inline }

type Table struct {
	Header TableRow
	Rows   []TableRow
}

func (*Table) BlockKind() BlockKind { return BlockTable }
func (*Table) isBlock()             {}

type DefinitionItem struct {
	Term       []Inline
	Definition []Block
}

type DefinitionList struct{ Items []DefinitionItem }

func (*DefinitionList) BlockKind() BlockKind { return BlockDefinitionList }
func (*DefinitionList) isBlock()             {}

// AdmonitionKind enumerates the recognized callout kinds a fenced block's
// info-string can request (e.g. ```note, ```warning).
type AdmonitionKind int

const (
	AdmonitionNote AdmonitionKind = iota
	AdmonitionTip
	AdmonitionImportant
	AdmonitionWarning
	AdmonitionCaution
)

type Admonition struct {
	Kind     AdmonitionKind
	Children []Block
}

func (*Admonition) BlockKind() BlockKind { return BlockAdmonition }
func (*Admonition) isBlock()             {}

type Math struct{ Text string }

func (*Math) BlockKind() BlockKind { return BlockMath }
func (*Math) isBlock()             {}

type ThematicBreak struct{}

func (*ThematicBreak) BlockKind() BlockKind { return BlockThematicBreak }
func (*ThematicBreak) isBlock()             {}

type FootnoteDefinition struct {
	Label    string
	Children []Block
}

func (*FootnoteDefinition) BlockKind() BlockKind { return BlockFootnoteDefinition }
func (*FootnoteDefinition) isBlock()             {}

// Brief is the promoted or explicit one-paragraph summary.
type Brief struct{ Children []Inline }

func (*Brief) BlockKind() BlockKind { return BlockBrief }
func (*Brief) isBlock()             {}

type Returns struct{ Children []Inline }

func (*Returns) BlockKind() BlockKind { return BlockReturns }
func (*Returns) isBlock()             {}

type Param struct {
	Name      string
	Direction string // "", "in", "out", "in,out" as written after @param[...]
	Children  []Inline
}

func (*Param) BlockKind() BlockKind { return BlockParam }
func (*Param) isBlock()             {}

type TParam struct {
	Name     string
	Children []Inline
}

func (*TParam) BlockKind() BlockKind { return BlockTParam }
func (*TParam) isBlock()             {}

type Throws struct {
	Exception string
	Children  []Inline
}

func (*Throws) BlockKind() BlockKind { return BlockThrows }
func (*Throws) isBlock()             {}

type See struct{ Children []Inline }

func (*See) BlockKind() BlockKind { return BlockSee }
func (*See) isBlock()             {}

type Precondition struct{ Children []Inline }

func (*Precondition) BlockKind() BlockKind { return BlockPrecondition }
func (*Precondition) isBlock()             {}

type Postcondition struct{ Children []Inline }

func (*Postcondition) BlockKind() BlockKind { return BlockPostcondition }
func (*Postcondition) isBlock()             {}

// --- Inline variants ---

type Text struct{ Text string }

func (*Text) InlineKind() InlineKind { return InlineText }
func (*Text) isInline()              {}

type InlineCodeSpan struct{ Text string }

func (*InlineCodeSpan) InlineKind() InlineKind { return InlineCode }
func (*InlineCodeSpan) isInline()              {}

type Strong struct{ Children []Inline }

func (*Strong) InlineKind() InlineKind { return InlineStrong }
func (*Strong) isInline()              {}

type Emph struct{ Children []Inline }

func (*Emph) InlineKind() InlineKind { return InlineEmph }
func (*Emph) isInline()              {}

type Link struct {
	Destination string
	Title       string
	Children    []Inline
}

func (*Link) InlineKind() InlineKind { return InlineLink }
func (*Link) isInline()              {}

// Reference is an `@ref name`. ID is the resolved symbol; an unresolved
// reference keeps a zero ID and only its Text, which the renderers print
// as plain text.
type Reference struct {
	Text string
	ID   symbolid.ID
}

func (*Reference) InlineKind() InlineKind { return InlineReference }
func (*Reference) isInline()              {}

// CopyDetails is an `@copydetails name` node; ID is symbolid.Invalid if the
// name did not resolve.
type CopyDetails struct {
	Text string
	ID   symbolid.ID
}

func (*CopyDetails) InlineKind() InlineKind { return InlineCopyDetails }
func (*CopyDetails) isInline()              {}

type Image struct {
	Destination string
	Alt         string
}

func (*Image) InlineKind() InlineKind { return InlineImage }
func (*Image) isInline()              {}

type Highlight struct{ Children []Inline }

func (*Highlight) InlineKind() InlineKind { return InlineHighlight }
func (*Highlight) isInline()              {}

type LineBreak struct{}

func (*LineBreak) InlineKind() InlineKind { return InlineLineBreak }
func (*LineBreak) isInline()              {}

type SoftBreak struct{}

func (*SoftBreak) InlineKind() InlineKind { return InlineSoftBreak }
func (*SoftBreak) isInline()              {}

type Subscript struct{ Children []Inline }

func (*Subscript) InlineKind() InlineKind { return InlineSubscript }
func (*Subscript) isInline()              {}

type Superscript struct{ Children []Inline }

func (*Superscript) InlineKind() InlineKind { return InlineSuperscript }
func (*Superscript) isInline()              {}

type Strikethrough struct{ Children []Inline }

func (*Strikethrough) InlineKind() InlineKind { return InlineStrikethrough }
func (*Strikethrough) isInline()              {}

type FootnoteReference struct{ Label string }

func (*FootnoteReference) InlineKind() InlineKind { return InlineFootnoteReference }
func (*FootnoteReference) isInline()              {}

type InlineMath struct{ Text string }

func (*InlineMath) InlineKind() InlineKind { return InlineMath }
func (*InlineMath) isInline()              {}

// Comment is the assembled, immutable doc comment attached to an Info.
// Immutability is by convention: callers must not mutate a Comment after
// Assemble returns it, since multiple Infos may come to share one (see
// internal/extractor's friend-documentation copying).
type Comment struct {
	Brief    *Brief
	Document []Block

	Params         []*Param
	TParams        []*TParam
	Returns        []*Returns
	Throws         []*Throws
	Preconditions  []*Precondition
	Postconditions []*Postcondition
	Sees           []*See
	Relates        []string
	Related        []string
}
