package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"garnet/internal/source"
	"garnet/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Flags []string    `json:"flags,omitempty"`
}

// TokensPretty writes one line per token with its position and text.
func TokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%4d: %-16s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if flags := flagNames(tok.Flags); len(flags) > 0 {
			fmt.Fprintf(w, " [%s]", joinFlags(flags))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON writes the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Span:  tok.Span,
			Flags: flagNames(tok.Flags),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func flagNames(f token.Flags) []string {
	var names []string
	if f&token.FlagInterpolates != 0 {
		names = append(names, "interpolates")
	}
	if f&token.FlagSquiggly != 0 {
		names = append(names, "squiggly")
	}
	if f&token.FlagDashed != 0 {
		names = append(names, "dashed")
	}
	if f&token.FlagSpaceBefore != 0 {
		names = append(names, "space-before")
	}
	return names
}

func joinFlags(names []string) string {
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
