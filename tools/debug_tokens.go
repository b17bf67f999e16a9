package main

import (
	"fmt"
	"os"

	lx "github.com/tinyrange/ion/internal/lexer"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_tokens <file>")
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	l := lx.New(string(data))
	for {
		t := l.Next()
		fmt.Printf("%d %v %q at %d:%d\n", int(t.Type), t.Type, t.Lex, t.Line, t.Col)
		if t.Type == lx.EOF {
			break
		}
	}
}
