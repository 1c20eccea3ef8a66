package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may enter trees in bracket
// notation. Trees are evaluated by the currently selected acceptor and
// transducer, and results are printed. Trees given as command line arguments
// are evaluated before entering interactive mode.
//
// Please refer to packages "tree", "bottomup/dfa" and "bottomup/dft".
//
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	grammar := flag.String("grammar", "anbn", "Acceptor [anbn|simple|gb|minimalist]")
	transducer := flag.String("transducer", "reverse-anbn", "Transducer [reverse-anbn|gb2min|none]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to arbor")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{}
	if err := intp.selectGrammar(*grammar); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	if err := intp.selectTransducer(*transducer); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	intp.acceptor.Dump()                        // only visible in debug mode
	//
	repl, err := readline.New("arbor> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
