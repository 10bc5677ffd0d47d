package ast

// RegexpFlags are the trailing option letters of a regexp literal.
type RegexpFlags uint8

const (
	RegexpIgnoreCase RegexpFlags = 1 << iota // i
	RegexpMultiline                          // m
	RegexpExtended                           // x
	RegexpOnce                               // o
)

// IntegerNode is an integer literal. Values that overflow int64 keep
// Value zero; the exact digits remain recoverable through the span.
type IntegerNode struct {
	Base
	Value int64
}

func (n *IntegerNode) Kind() NodeKind     { return KindInteger }
func (n *IntegerNode) ChildNodes() []Node { return nil }
func (n *IntegerNode) Accept(v Visitor)   { v.VisitInteger(n) }

// FloatNode is a floating point literal.
type FloatNode struct {
	Base
	Value float64
}

func (n *FloatNode) Kind() NodeKind     { return KindFloat }
func (n *FloatNode) ChildNodes() []Node { return nil }
func (n *FloatNode) Accept(v Visitor)   { v.VisitFloat(n) }

// RationalNode is a literal with the r suffix, e.g. 3r or 1.5r.
type RationalNode struct {
	Base
	Numerator   int64
	Denominator int64
}

func (n *RationalNode) Kind() NodeKind     { return KindRational }
func (n *RationalNode) ChildNodes() []Node { return nil }
func (n *RationalNode) Accept(v Visitor)   { v.VisitRational(n) }

// ImaginaryNode wraps the numeric literal carrying the i suffix.
type ImaginaryNode struct {
	Base
	Numeric Node
}

func (n *ImaginaryNode) Kind() NodeKind     { return KindImaginary }
func (n *ImaginaryNode) ChildNodes() []Node { return []Node{n.Numeric} }
func (n *ImaginaryNode) Accept(v Visitor)   { v.VisitImaginary(n) }

// StringNode is a string literal without interpolation. Unescaped holds
// the value after escape processing.
type StringNode struct {
	Base
	Unescaped string
}

func (n *StringNode) Kind() NodeKind     { return KindString }
func (n *StringNode) ChildNodes() []Node { return nil }
func (n *StringNode) Accept(v Visitor)   { v.VisitString(n) }

// InterpolatedStringNode is a string literal with interpolated parts:
// StringNode, EmbeddedStatementsNode, and EmbeddedVariableNode children.
// Adjacent string literals concatenate into this node as well.
type InterpolatedStringNode struct {
	Base
	Parts []Node
}

func (n *InterpolatedStringNode) Kind() NodeKind     { return KindInterpolatedString }
func (n *InterpolatedStringNode) ChildNodes() []Node { return append([]Node(nil), n.Parts...) }
func (n *InterpolatedStringNode) Accept(v Visitor)   { v.VisitInterpolatedString(n) }

// XStringNode is a backtick command literal without interpolation.
type XStringNode struct {
	Base
	Unescaped string
}

func (n *XStringNode) Kind() NodeKind     { return KindXString }
func (n *XStringNode) ChildNodes() []Node { return nil }
func (n *XStringNode) Accept(v Visitor)   { v.VisitXString(n) }

// InterpolatedXStringNode is a command literal with interpolation.
type InterpolatedXStringNode struct {
	Base
	Parts []Node
}

func (n *InterpolatedXStringNode) Kind() NodeKind     { return KindInterpolatedXString }
func (n *InterpolatedXStringNode) ChildNodes() []Node { return append([]Node(nil), n.Parts...) }
func (n *InterpolatedXStringNode) Accept(v Visitor)   { v.VisitInterpolatedXString(n) }

// SymbolNode is a symbol literal.
type SymbolNode struct {
	Base
	Unescaped string
}

func (n *SymbolNode) Kind() NodeKind     { return KindSymbol }
func (n *SymbolNode) ChildNodes() []Node { return nil }
func (n *SymbolNode) Accept(v Visitor)   { v.VisitSymbol(n) }

// InterpolatedSymbolNode is :"...#{...}...".
type InterpolatedSymbolNode struct {
	Base
	Parts []Node
}

func (n *InterpolatedSymbolNode) Kind() NodeKind     { return KindInterpolatedSymbol }
func (n *InterpolatedSymbolNode) ChildNodes() []Node { return append([]Node(nil), n.Parts...) }
func (n *InterpolatedSymbolNode) Accept(v Visitor)   { v.VisitInterpolatedSymbol(n) }

// RegularExpressionNode is a regexp literal without interpolation.
// Unescaped keeps the pattern source as written (the regexp engine owns
// escape semantics).
type RegularExpressionNode struct {
	Base
	Unescaped string
	Flags     RegexpFlags
}

func (n *RegularExpressionNode) Kind() NodeKind     { return KindRegularExpression }
func (n *RegularExpressionNode) ChildNodes() []Node { return nil }
func (n *RegularExpressionNode) Accept(v Visitor)   { v.VisitRegularExpression(n) }

// InterpolatedRegularExpressionNode is a regexp literal with
// interpolated parts.
type InterpolatedRegularExpressionNode struct {
	Base
	Parts []Node
	Flags RegexpFlags
}

func (n *InterpolatedRegularExpressionNode) Kind() NodeKind {
	return KindInterpolatedRegularExpression
}
func (n *InterpolatedRegularExpressionNode) ChildNodes() []Node {
	return append([]Node(nil), n.Parts...)
}
func (n *InterpolatedRegularExpressionNode) Accept(v Visitor) {
	v.VisitInterpolatedRegularExpression(n)
}

// EmbeddedStatementsNode is one #{...} interpolation.
type EmbeddedStatementsNode struct {
	Base
	Statements *StatementsNode
}

func (n *EmbeddedStatementsNode) Kind() NodeKind     { return KindEmbeddedStatements }
func (n *EmbeddedStatementsNode) ChildNodes() []Node { return []Node{opt(n.Statements)} }
func (n *EmbeddedStatementsNode) Accept(v Visitor)   { v.VisitEmbeddedStatements(n) }

// EmbeddedVariableNode is the #@ivar / #$gvar interpolation shorthand.
type EmbeddedVariableNode struct {
	Base
	Variable Node
}

func (n *EmbeddedVariableNode) Kind() NodeKind     { return KindEmbeddedVariable }
func (n *EmbeddedVariableNode) ChildNodes() []Node { return []Node{n.Variable} }
func (n *EmbeddedVariableNode) Accept(v Visitor)   { v.VisitEmbeddedVariable(n) }

// ArrayNode is an array literal, including %w and %i lists.
type ArrayNode struct {
	Base
	Elements []Node
}

func (n *ArrayNode) Kind() NodeKind     { return KindArray }
func (n *ArrayNode) ChildNodes() []Node { return append([]Node(nil), n.Elements...) }
func (n *ArrayNode) Accept(v Visitor)   { v.VisitArray(n) }

// HashNode is a hash literal; elements are AssocNode and AssocSplatNode.
type HashNode struct {
	Base
	Elements []Node
}

func (n *HashNode) Kind() NodeKind     { return KindHash }
func (n *HashNode) ChildNodes() []Node { return append([]Node(nil), n.Elements...) }
func (n *HashNode) Accept(v Visitor)   { v.VisitHash(n) }

// AssocNode is one key/value pair.
type AssocNode struct {
	Base
	Key   Node
	Value Node // nil for the shorthand {x:}
}

func (n *AssocNode) Kind() NodeKind     { return KindAssoc }
func (n *AssocNode) ChildNodes() []Node { return []Node{n.Key, n.Value} }
func (n *AssocNode) Accept(v Visitor)   { v.VisitAssoc(n) }

// AssocSplatNode is a **expr hash splat.
type AssocSplatNode struct {
	Base
	Value Node // nil for the bare ** in patterns
}

func (n *AssocSplatNode) Kind() NodeKind     { return KindAssocSplat }
func (n *AssocSplatNode) ChildNodes() []Node { return []Node{n.Value} }
func (n *AssocSplatNode) Accept(v Visitor)   { v.VisitAssocSplat(n) }

// RangeNode is a .. or ... range; either endpoint may be nil.
type RangeNode struct {
	Base
	Left      Node
	Right     Node
	Exclusive bool
}

func (n *RangeNode) Kind() NodeKind     { return KindRange }
func (n *RangeNode) ChildNodes() []Node { return []Node{n.Left, n.Right} }
func (n *RangeNode) Accept(v Visitor)   { v.VisitRange(n) }

type NilNode struct{ Base }

func (n *NilNode) Kind() NodeKind     { return KindNil }
func (n *NilNode) ChildNodes() []Node { return nil }
func (n *NilNode) Accept(v Visitor)   { v.VisitNil(n) }

type TrueNode struct{ Base }

func (n *TrueNode) Kind() NodeKind     { return KindTrue }
func (n *TrueNode) ChildNodes() []Node { return nil }
func (n *TrueNode) Accept(v Visitor)   { v.VisitTrue(n) }

type FalseNode struct{ Base }

func (n *FalseNode) Kind() NodeKind     { return KindFalse }
func (n *FalseNode) ChildNodes() []Node { return nil }
func (n *FalseNode) Accept(v Visitor)   { v.VisitFalse(n) }

type SelfNode struct{ Base }

func (n *SelfNode) Kind() NodeKind     { return KindSelf }
func (n *SelfNode) ChildNodes() []Node { return nil }
func (n *SelfNode) Accept(v Visitor)   { v.VisitSelf(n) }

// SourceFileNode is __FILE__; Filepath is resolved at parse time.
type SourceFileNode struct {
	Base
	Filepath string
}

func (n *SourceFileNode) Kind() NodeKind     { return KindSourceFile }
func (n *SourceFileNode) ChildNodes() []Node { return nil }
func (n *SourceFileNode) Accept(v Visitor)   { v.VisitSourceFile(n) }

// SourceLineNode is __LINE__.
type SourceLineNode struct{ Base }

func (n *SourceLineNode) Kind() NodeKind     { return KindSourceLine }
func (n *SourceLineNode) ChildNodes() []Node { return nil }
func (n *SourceLineNode) Accept(v Visitor)   { v.VisitSourceLine(n) }

// SourceEncodingNode is __ENCODING__.
type SourceEncodingNode struct{ Base }

func (n *SourceEncodingNode) Kind() NodeKind     { return KindSourceEncoding }
func (n *SourceEncodingNode) ChildNodes() []Node { return nil }
func (n *SourceEncodingNode) Accept(v Visitor)   { v.VisitSourceEncoding(n) }
