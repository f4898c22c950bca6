/*
File    : monkey-go/repl/repl.go
Author  : akashmaji946/monkey-go contributors

Package repl implements the line-buffered read-eval-print loop that drives
the lexer interactively. It is an external collaborator of the lexer/
parser/AST core (spec.md §1, §6): it never calls the parser, only the
lexer, and simply prints every token it scans until end of file.

The loop uses github.com/chzyer/readline for line editing and history, and
github.com/fatih/color to color diagnostic output — the same libraries
and color roles the teacher's repl package uses (errors in red), scaled
down to the trivial token dumper this front-end's REPL is.
*/
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/monkey-go/lexer"
	"github.com/akashmaji946/monkey-go/token"
)

// Prompt is the literal three-character prompt spec.md §6 mandates,
// including the trailing space.
const Prompt = ">> "

var illegalColor = color.New(color.FgRed)

// Start runs the REPL until the reader signals EOF (e.g. Ctrl+D) or
// readline itself errors. Each line is tokenized to completion and every
// token is printed in its debug form on its own line, matching spec.md
// §6 exactly: no banner, no history replay on start, no exit-code
// contract beyond readline's own EOF handling.
func Start(writer io.Writer) error {
	rl, err := readline.New(Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C: either
			// way, the REPL's job is done.
			return nil
		}

		l := lexer.New(line)
		for tok := l.NextToken(); ; tok = l.NextToken() {
			printToken(writer, tok)
			if tok.Type == token.EOF {
				break
			}
		}
	}
}

// printToken writes a token's debug form on its own line, coloring
// ILLEGAL tokens red so lexical noise stands out in the transcript.
func printToken(writer io.Writer, tok token.Token) {
	if tok.Type == token.ILLEGAL {
		illegalColor.Fprintf(writer, "%s\n", tok.Debug())
		return
	}
	io.WriteString(writer, tok.Debug()+"\n")
}
