// Command mqt-opt is an interactive inspector for the rewrite passes: it
// loads an OpenQASM 2.0 file and shows the effect of each pass side by side
// with the original program.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TeWas/mqt-core/qasm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mqt-opt <file.qasm>")
		os.Exit(1)
	}
	path := os.Args[1]
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mqt-opt: %v\n", err)
		os.Exit(1)
	}
	program, err := qasm.Parse(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mqt-opt: %s: %v\n", path, err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(path, program), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mqt-opt: %v\n", err)
		os.Exit(1)
	}
}
