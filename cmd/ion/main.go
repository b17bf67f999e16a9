package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
	"github.com/tinyrange/ion/internal/parser"
	"github.com/tinyrange/ion/internal/printer"
)

func main() {
	var (
		outPath    = flag.String("o", "", "write the syntax tree to `file` instead of stdout")
		dumpTokens = flag.Bool("tokens", false, "print the token stream before parsing")
		showStats  = flag.Bool("stats", false, "report arena usage on stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ion [-tokens] [-stats] [-o out] <file.ion>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	srcPath := flag.Arg(0)
	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	out, file, err := render(srcPath, string(data), *dumpTokens)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", perr)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	if *showStats {
		st := file.Arena.Stats()
		fmt.Fprintf(os.Stderr, "%s: %d decls, %d nodes (%v)\n", srcPath, len(file.Decls), st.Nodes(), st)
	}

	if *outPath == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}

// render parses src and returns its S-expression form, preceded by the
// token stream when tokens is set.
func render(srcPath, src string, tokens bool) ([]byte, *ast.File, error) {
	var out bytes.Buffer
	if tokens {
		writeTokens(&out, src)
	}
	file, err := parser.ParseFile(srcPath, src)
	if err != nil {
		return nil, nil, err
	}
	if err := printer.Fprint(&out, file); err != nil {
		return nil, nil, fmt.Errorf("print %s: %w", srcPath, err)
	}
	if len(file.Decls) > 0 {
		out.WriteByte('\n')
	}
	return out.Bytes(), file, nil
}

func writeTokens(out *bytes.Buffer, src string) {
	l := lexer.New(src)
	for {
		t := l.Next()
		fmt.Fprintf(out, "%d:%d\t%v\n", t.Line, t.Col, t)
		if t.Type == lexer.EOF {
			break
		}
	}
}
