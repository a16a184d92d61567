// Searchbox reads one line of input with an interactive prompt and prints it.
//
// The prompt is drawn on stderr so the submitted text can be captured from
// stdout, e.g. `query=$(searchbox)`.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"searchbox/config"
	"searchbox/lineedit"
	"searchbox/render"
)

const defaultWidth = 80

func main() {
	log.SetFlags(0)
	log.SetPrefix("searchbox: ")

	initial := ""
	configPath := ""
	initConfig := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--init-config":
			initConfig = true
		case "-c", "--config":
			if i+1 >= len(args) {
				log.Fatalf("%s needs a path", arg)
			}
			i++
			configPath = args[i]
		case "-h", "--help":
			printUsage()
			return
		default:
			if initial == "" {
				initial = arg
			}
		}
	}

	// Generate default config and exit
	if initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal(config.FormatError(err))
	}

	os.Exit(run(cfg, initial))
}

func printUsage() {
	fmt.Println(`searchbox - interactive single-line input

Usage: searchbox [options] [initial text]

Options:
  -c, --config <path>  Load configuration from path
  --init-config        Print the default configuration and exit
  -h, --help           Show this help

Keys (emacs scheme):
  Left/Right, Ctrl-B/Ctrl-F        move one character
  Ctrl+Left/Right, Alt-B/Alt-F     move one word
  Home/End, Ctrl-A/Ctrl-E          move to start/end
  Backspace, Delete, Ctrl-D        delete one character
  Ctrl+Backspace, Ctrl-W           delete previous word
  Ctrl+Delete, Alt-D               delete next word
  Ctrl-K/Ctrl-U                    delete to end/start
  Ctrl-T                           transpose characters
  Ctrl-L                           clear
  Enter                            print the input and exit
  Esc, Ctrl-C                      exit with status 1

Keys (vim scheme, editor.scheme = "vim"):
  starts in normal mode; i/a/I/A insert, Esc back to normal
  h/l, w/b, 0/$ move; x/X, D/C/S/s, dw/db/d$/cw, dd/cc edit
  Esc in normal mode or Ctrl-C exits with status 1`)
}

// run drives an interactive session on the controlling terminal and returns
// the process exit code.
func run(cfg *config.Config, initial string) int {
	scheme, err := lineedit.SchemeByName(cfg.Editor.Scheme)
	if err != nil {
		log.Print(err)
		return 2
	}

	term, err := render.NewTerminal(os.Stdin)
	if err != nil {
		log.Printf("stdin is not a terminal: %v", err)
		return 2
	}
	if err := term.EnterRawMode(); err != nil {
		log.Printf("entering raw mode: %v", err)
		return 2
	}
	defer term.RestoreMode()

	s := newSession(initial, scheme, cfg, os.Stderr)
	s.width = terminalWidth()

	resizeCh := make(chan os.Signal, 1)
	signal.Notify(resizeCh, syscall.SIGWINCH)
	defer signal.Stop(resizeCh)

	keys := make(chan []byte)
	go readKeys(os.Stdin, cfg.Input.ReadBuffer, keys)

	s.redraw()
	for {
		select {
		case <-resizeCh:
			s.width = terminalWidth()
			s.redraw()

		case buf, ok := <-keys:
			if !ok {
				s.finish()
				return 1
			}
			done, submitted := s.handle(buf)
			if !done {
				continue
			}
			s.finish()
			if !submitted {
				return 1
			}
			fmt.Fprintln(os.Stdout, s.cursor.Take())
			return 0
		}
	}
}

// readKeys sends one chunk per terminal read until the input fails.
func readKeys(r io.Reader, size int, keys chan<- []byte) {
	defer close(keys)
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			keys <- chunk
		}
		if err != nil {
			return
		}
	}
}

func terminalWidth() int {
	w, _, err := render.TerminalSize(os.Stderr)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
