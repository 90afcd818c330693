package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/tablex/grammar"
	"github.com/npillmayer/tablex/grammar/sample"
	"github.com/npillmayer/tablex/lexer"
	"github.com/npillmayer/tablex/scanner"
	"github.com/npillmayer/tablex/scanner/lexmach"
)

// main() starts an interactive CLI ("T.LEX"), where users may enter lines of
// input for the sample language. T.LEX will tokenize each line and print out
// the tokens.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	file := flag.String("file", "", "Tokenize a file and exit")
	encoding := flag.String("encoding", "utf-8", "Encoding of the file")
	bytemode := flag.Bool("bytes", false, "Read the file in byte mode")
	backend := flag.String("backend", "table", "Lexer backend [table|lexmachine]")
	dump := flag.Bool("dump", false, "Print the lexer table")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to TLEX")     // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the table and the backend
	table := sample.Table()
	pterm.Info.Println(fmt.Sprintf("Table %q [%s]", table.Name, table.Fingerprint()))
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	if *dump {
		table.Dump(os.Stdout)
	}
	t := &TLex{
		table: table,
		lx:    lexer.New(table),
	}
	if *backend == "lexmachine" {
		var patterns []lexmach.Pattern
		for _, rule := range sample.FlatRules {
			patterns = append(patterns, lexmach.Pattern{Symbol: rule.Symbol, Regex: rule.Regex})
		}
		lm, err := lexmach.NewLMAdapter(table, patterns)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		t.lm = lm
		pterm.Info.Println("Using lexmachine backend (no lexical groups)")
	} else if *backend != "table" {
		pterm.Error.Println(fmt.Sprintf("Unknown backend %q", *backend))
		os.Exit(2)
	}
	//
	// tokenize a file, if given
	if *file != "" {
		enc := *encoding
		if *bytemode {
			enc = ""
		}
		if err := t.TokenizeFile(*file, enc); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("tlex> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	t.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	t.REPL()                            // go into interactive mode
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

// TLex is our interpreter object
type TLex struct {
	table *grammar.Table
	lx    *lexer.Lexer
	lm    *lexmach.LMAdapter // lexmachine backend, if selected
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (t *TLex) REPL() {
	for {
		line, err := t.readInput()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := t.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// readInput reads a line of input. Lines ending in a backslash are joined with
// the next line, separated by a newline.
func (t *TLex) readInput() (string, error) {
	defer t.repl.SetPrompt("tlex> ")
	var input strings.Builder
	for {
		line, err := t.repl.Readline()
		if err != nil {
			return "", err
		}
		if !strings.HasSuffix(line, `\`) {
			input.WriteString(line)
			return input.String(), nil
		}
		input.WriteString(strings.TrimSuffix(line, `\`))
		input.WriteByte('\n')
		t.repl.SetPrompt("  ... ")
	}
}

// Eval executes a command or tokenizes a line of input.
func (t *TLex) Eval(input string) bool {
	switch strings.TrimSpace(input) {
	case ":quit":
		return true
	case ":dump":
		t.table.Dump(os.Stdout)
		return false
	case ":groups":
		t.printGroups()
		return false
	}
	var tok scanner.Tokenizer
	if t.lm != nil {
		sc, err := t.lm.Scanner(input)
		if err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		tok = sc
	} else {
		t.lx.LoadString(input)
		tok = scanner.New(t.lx)
	}
	lines := strings.Split(input, "\n")
	tok.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
		if lexErr, ok := e.(*scanner.LexicalError); ok {
			if pos := lexErr.Token.Pos; pos.Line <= len(lines) {
				pterm.Println(lines[pos.Line-1])
				pterm.Println(lexer.Caret(lines[pos.Line-1], pos.Column))
			}
		}
	})
	printTokens(readTokens(tok, t.table))
	return false
}

// TokenizeFile tokenizes a file and prints the tokens. With an empty encoding,
// the file is read in byte mode.
func (t *TLex) TokenizeFile(path string, encoding string) error {
	var tok scanner.Tokenizer
	if t.lm != nil {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return err
		}
		if tok, err = t.lm.Scanner(string(data)); err != nil {
			return err
		}
	} else {
		if err := t.lx.LoadFile(path, encoding); err != nil {
			return err
		}
		defer t.lx.Close()
		tracer().Infof("Reading %s in %s mode", path, t.lx.Mode())
		tok = scanner.New(t.lx)
	}
	tok.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
	})
	printTokens(readTokens(tok, t.table))
	return nil
}

func readTokens(tok scanner.Tokenizer, table *grammar.Table) []lexer.Token {
	var tokens []lexer.Token
	for {
		token := tok.NextToken()
		tokens = append(tokens, token)
		if token.Symbol == table.EOF() {
			return tokens
		}
	}
}

func printTokens(tokens []lexer.Token) {
	data := pterm.TableData{
		{"Pos", "Span", "Symbol", "Kind", "Lexeme"},
	}
	for _, token := range tokens {
		data = append(data, []string{
			token.Pos.String(),
			token.Span.String(),
			token.Name(),
			token.Kind().String(),
			fmt.Sprintf("%q", token.Lexeme),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printGroups displays the lexical groups of the table as a tree, with groups
// allowed to nest as children.
func (t *TLex) printGroups() {
	ll := pterm.LeveledList{}
	for _, g := range t.table.Groups() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: g.String()})
		for _, inner := range g.Nesting() {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: inner.Name})
		}
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func setTraceLevel(level tracing.TraceLevel) {
	tracer().SetTraceLevel(level)
	for _, key := range []string{"tablex.grammar", "tablex.lexer", "tablex.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
