/*
File    : loxwalk/cmd/loxwalk/main.go

The loxwalk CLI: `interpreter [--file PATH]`. Prints a banner and colored
diagnostics; exits 0 on a clean run even with diagnostics printed, and
non-zero only on an I/O error reading the source file.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/gomix-labs/loxwalk/interp"
	"github.com/gomix-labs/loxwalk/internal/repl"
	"github.com/gomix-labs/loxwalk/parser"
)

const (
	version = "0.1.0"
	author  = "gomix-labs"
	banner  = `
  _                            _ _
 | | _____  ____      ____ _| | |__
 | |/ _ \ \/ /\ \ /\ / / _' | | / /
 | | (_) >  <  \ V  V / (_| | |   <
 |_|\___/_/\_\  \_/\_/ \__,_|_|_|\_\
`
)

func main() {
	filePath := flag.String("file", "", "path to a source file to execute; omit to start the REPL")
	flag.Parse()

	if *filePath != "" {
		os.Exit(runFile(*filePath))
	}
	if err := repl.New(banner, version, author).Start(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile implements the file-execution mode. It returns the process exit
// code: 0 on a clean run (even with diagnostics printed), non-zero only on
// an I/O error reading the source file.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "could not read %s: %s\n", path, err)
		return 1
	}

	p, lexReport := parser.New(string(source))
	if lexReport.HasErrors() {
		lexReport.Print(os.Stdout)
		return 0
	}

	statements := p.Parse()
	if p.HasErrors() {
		p.Report().Print(os.Stdout)
		return 0
	}

	interpreter := interp.New(stdoutWriter{os.Stdout}, &stdinReader{os.Stdin})
	runtimeReport := interpreter.Run(statements)
	if runtimeReport.HasErrors() {
		runtimeReport.Print(os.Stdout)
	}
	return 0
}

type stdoutWriter struct{ w io.Writer }

func (s stdoutWriter) WriteString(str string) (int, error) { return io.WriteString(s.w, str) }

// stdinReader backs the read_line native in file-execution mode.
type stdinReader struct{ r io.Reader }

func (s *stdinReader) ReadLine() (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if len(line) == 0 {
				return "", err
			}
			break
		}
	}
	return string(line), nil
}
