/*
File    : loxwalk/internal/repl/repl.go

Package repl implements the interactive loop: prompt "|>  ", multi-line
accumulation ending on a blank line or a bare q/quit, one persistent
Interpreter (and its global environment) across submissions. Uses
readline for line editing/history, fatih/color for diagnostic/result
coloring, and recovers from a panic around each submission.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomix-labs/loxwalk/interp"
	"github.com/gomix-labs/loxwalk/parser"
)

const prompt = "|>  "

var (
	errorColor = color.New(color.FgRed)
	infoColor  = color.New(color.FgCyan)
)

// Repl is a single interactive session. Banner/Version/Author are purely
// cosmetic, printed once at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string

	writer      io.Writer
	interpreter *interp.Interpreter
}

func New(banner, version, author string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author}
}

func (r *Repl) printBanner() {
	if r.Banner != "" {
		color.New(color.FgGreen).Fprintf(r.writer, "%s\n", r.Banner)
	}
	infoColor.Fprintf(r.writer, "loxwalk %s | %s\n", r.Version, r.Author)
	infoColor.Fprintln(r.writer, `Enter code, blank line or "q"/"quit" to submit. "quit" at submission exits.`)
}

// Start runs the REPL against writer until the user exits (EOF, or
// submitting a bare "q"/"quit"). One Interpreter instance persists for
// the whole session, so its global environment persists across
// submissions.
func (r *Repl) Start(writer io.Writer) error {
	r.writer = writer
	r.printBanner()

	rl, err := readline.NewEx(&readline.Config{Prompt: prompt, Stdout: writer})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.interpreter = interp.New(stdoutWriter{writer}, &readlineReader{rl})

	var buffer []string
	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or interrupted
			writer.Write([]byte("\n"))
			return nil
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "q" || trimmed == "quit" {
			if len(buffer) == 0 {
				if trimmed == "q" || trimmed == "quit" {
					return nil
				}
				continue
			}
			source := strings.Join(buffer, "\n")
			buffer = nil
			r.submit(source)
			if trimmed == "q" || trimmed == "quit" {
				return nil
			}
			continue
		}
		buffer = append(buffer, line)
		rl.SaveHistory(line)
	}
}

// submit runs one phase-gated lex -> parse -> eval pass: a non-empty
// report halts before the next phase runs. A submission that fails lex
// or parse never touches the persistent global environment — Run is only
// ever called once both prior phases are clean.
func (r *Repl) submit(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			errorColor.Fprintf(r.writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p, lexReport := parser.New(source)
	if lexReport.HasErrors() {
		lexReport.Print(r.writer)
		return
	}

	statements := p.Parse()
	if p.HasErrors() {
		p.Report().Print(r.writer)
		return
	}

	runtimeReport := r.interpreter.Run(statements)
	if runtimeReport.HasErrors() {
		runtimeReport.Print(r.writer)
	}
}

type stdoutWriter struct{ w io.Writer }

func (s stdoutWriter) WriteString(str string) (int, error) { return io.WriteString(s.w, str) }

type readlineReader struct{ rl *readline.Instance }

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
