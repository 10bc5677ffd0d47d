package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"garnet/internal/ast"
)

// Tree writes an indented dump of the syntax tree, one node per line:
//
//	ProgramNode [0,42)
//	  StatementsNode [0,42)
//	    CallNode [0,10) name="puts"
//
// Absent optional children are skipped.
func Tree(w io.Writer, root ast.Node) {
	writeTree(w, root, 0)
}

func writeTree(w io.Writer, n ast.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), Summary(n))
	for _, child := range n.ChildNodes() {
		writeTree(w, child, depth+1)
	}
}

// Summary renders one node as a single line: kind, span, scalar fields.
func Summary(n ast.Node) string {
	sp := n.Span()
	return fmt.Sprintf("%s [%d,%d)%s", n.Kind().String(), sp.Start, sp.End, scalarSummary(n))
}

// TreeJSON writes the tree as nested JSON objects. Every node carries
// its type, span, scalar fields, and children in source order.
func TreeJSON(w io.Writer, root ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(treeValue(root))
}

func treeValue(n ast.Node) any {
	if n == nil {
		return nil
	}
	sp := n.Span()
	obj := map[string]any{
		"type": n.Kind().String(),
		"span": map[string]uint32{"start": sp.Start, "end": sp.End},
	}
	for k, v := range scalarFields(n) {
		obj[k] = v
	}
	children := n.ChildNodes()
	if len(children) > 0 {
		vals := make([]any, 0, len(children))
		for _, c := range children {
			vals = append(vals, treeValue(c))
		}
		obj["children"] = vals
	}
	return obj
}

// scalarSummary renders the node's non-child fields for the pretty dump.
func scalarSummary(n ast.Node) string {
	fields := scalarFields(n)
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, key := range []string{"name", "operator", "value", "unescaped", "flags",
		"numerator", "denominator", "number", "maximum", "filepath",
		"safe_navigation", "variable_call", "attribute_write", "exclusive",
		"do_while", "endless"} {
		if v, ok := fields[key]; ok {
			fmt.Fprintf(&sb, " %s=%v", key, jsonish(v))
		}
	}
	return sb.String()
}

func jsonish(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// scalarFields extracts the stored non-child fields per kind. Bools are
// included only when set, keeping dumps terse.
func scalarFields(n ast.Node) map[string]any {
	out := map[string]any{}
	setBool := func(key string, v bool) {
		if v {
			out[key] = true
		}
	}
	switch v := n.(type) {
	case *ast.IntegerNode:
		out["value"] = v.Value
	case *ast.FloatNode:
		out["value"] = v.Value
	case *ast.RationalNode:
		out["numerator"] = v.Numerator
		out["denominator"] = v.Denominator
	case *ast.StringNode:
		out["unescaped"] = v.Unescaped
	case *ast.XStringNode:
		out["unescaped"] = v.Unescaped
	case *ast.SymbolNode:
		out["unescaped"] = v.Unescaped
	case *ast.RegularExpressionNode:
		out["unescaped"] = v.Unescaped
		out["flags"] = regexpFlagString(v.Flags)
	case *ast.InterpolatedRegularExpressionNode:
		out["flags"] = regexpFlagString(v.Flags)
	case *ast.SourceFileNode:
		out["filepath"] = v.Filepath
	case *ast.RangeNode:
		setBool("exclusive", v.Exclusive)
	case *ast.LocalVariableReadNode:
		out["name"] = v.Name
	case *ast.LocalVariableTargetNode:
		out["name"] = v.Name
	case *ast.InstanceVariableReadNode:
		out["name"] = v.Name
	case *ast.InstanceVariableTargetNode:
		out["name"] = v.Name
	case *ast.ClassVariableReadNode:
		out["name"] = v.Name
	case *ast.ClassVariableTargetNode:
		out["name"] = v.Name
	case *ast.GlobalVariableReadNode:
		out["name"] = v.Name
	case *ast.GlobalVariableTargetNode:
		out["name"] = v.Name
	case *ast.ConstantReadNode:
		out["name"] = v.Name
	case *ast.ConstantTargetNode:
		out["name"] = v.Name
	case *ast.BackReferenceReadNode:
		out["name"] = v.Name
	case *ast.NumberedReferenceReadNode:
		out["number"] = v.Number
	case *ast.LocalVariableWriteNode:
		out["name"] = v.Name
	case *ast.LocalVariableOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
	case *ast.LocalVariableOrWriteNode:
		out["name"] = v.Name
	case *ast.LocalVariableAndWriteNode:
		out["name"] = v.Name
	case *ast.InstanceVariableWriteNode:
		out["name"] = v.Name
	case *ast.InstanceVariableOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
	case *ast.InstanceVariableOrWriteNode:
		out["name"] = v.Name
	case *ast.InstanceVariableAndWriteNode:
		out["name"] = v.Name
	case *ast.ClassVariableWriteNode:
		out["name"] = v.Name
	case *ast.ClassVariableOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
	case *ast.ClassVariableOrWriteNode:
		out["name"] = v.Name
	case *ast.ClassVariableAndWriteNode:
		out["name"] = v.Name
	case *ast.GlobalVariableWriteNode:
		out["name"] = v.Name
	case *ast.GlobalVariableOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
	case *ast.GlobalVariableOrWriteNode:
		out["name"] = v.Name
	case *ast.GlobalVariableAndWriteNode:
		out["name"] = v.Name
	case *ast.ConstantWriteNode:
		out["name"] = v.Name
	case *ast.ConstantOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
	case *ast.ConstantOrWriteNode:
		out["name"] = v.Name
	case *ast.ConstantAndWriteNode:
		out["name"] = v.Name
	case *ast.ConstantPathNode:
		out["name"] = v.Name
	case *ast.CallNode:
		out["name"] = v.Name
		setBool("safe_navigation", v.SafeNavigation)
		setBool("variable_call", v.VariableCall)
		setBool("attribute_write", v.AttributeWrite)
	case *ast.CallOperatorWriteNode:
		out["name"] = v.Name
		out["operator"] = v.Operator
		setBool("safe_navigation", v.SafeNavigation)
	case *ast.CallOrWriteNode:
		out["name"] = v.Name
		setBool("safe_navigation", v.SafeNavigation)
	case *ast.CallAndWriteNode:
		out["name"] = v.Name
		setBool("safe_navigation", v.SafeNavigation)
	case *ast.CallTargetNode:
		out["name"] = v.Name
		setBool("safe_navigation", v.SafeNavigation)
	case *ast.IndexOperatorWriteNode:
		out["operator"] = v.Operator
	case *ast.NumberedParametersNode:
		out["maximum"] = v.Maximum
	case *ast.WhileNode:
		setBool("do_while", v.DoWhile)
	case *ast.UntilNode:
		setBool("do_while", v.DoWhile)
	case *ast.DefNode:
		out["name"] = v.Name
		setBool("endless", v.Endless)
	case *ast.OptionalParameterNode:
		out["name"] = v.Name
	case *ast.RestParameterNode:
		out["name"] = v.Name
	case *ast.RequiredParameterNode:
		out["name"] = v.Name
	case *ast.RequiredKeywordParameterNode:
		out["name"] = v.Name
	case *ast.OptionalKeywordParameterNode:
		out["name"] = v.Name
	case *ast.KeywordRestParameterNode:
		out["name"] = v.Name
	case *ast.BlockParameterNode:
		out["name"] = v.Name
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func regexpFlagString(f ast.RegexpFlags) string {
	var sb strings.Builder
	if f&ast.RegexpIgnoreCase != 0 {
		sb.WriteByte('i')
	}
	if f&ast.RegexpMultiline != 0 {
		sb.WriteByte('m')
	}
	if f&ast.RegexpExtended != 0 {
		sb.WriteByte('x')
	}
	if f&ast.RegexpOnce != 0 {
		sb.WriteByte('o')
	}
	return sb.String()
}
