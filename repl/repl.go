package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/OJarrisonn/rlispy/parser"
	"github.com/OJarrisonn/rlispy/parser/rdparser"
)

// RunRepl runs an interactive reader that parses each submitted expression
// and prints the resulting forms.  Lines that end inside an unfinished form
// are buffered and completed by subsequent lines.
func RunRepl(prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		forms, err := parser.ParseString("repl", string(line))
		if err != nil {
			if rdparser.IsIncomplete(err) {
				buf = line
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(err)
			continue
		}
		for _, form := range forms {
			fmt.Println(form)
		}
	}
	if err != io.EOF {
		errln(err)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
