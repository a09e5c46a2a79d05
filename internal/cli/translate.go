package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/signsetu/signsetu/internal/config"
	"github.com/signsetu/signsetu/internal/signs"
)

// TranslateCommand resolves free text against the sign dictionary and prints
// the descriptors.
type TranslateCommand struct {
	Text    string
	Verbose bool
	Play    bool
}

func NewTranslateCommand() *TranslateCommand {
	return &TranslateCommand{}
}

func (cmd *TranslateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)

	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print the step-by-step signing instructions")
	fs.BoolVar(&cmd.Play, "play", false, "Animate the translation token by token")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s translate [options] <text>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Resolve text against the sign dictionary and print the matching signs.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s translate \"hello namaste\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s translate -verbose \"thank you friend\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s translate -play \"good morning friend\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Text = strings.Join(fs.Args(), " ")
	if strings.TrimSpace(cmd.Text) == "" {
		fs.Usage()
		return fmt.Errorf("text is required")
	}

	return nil
}

func (cmd *TranslateCommand) Run() error {
	dict := signs.Default()

	if cmd.Play {
		return cmd.playback(dict)
	}

	tokens := dict.ResolveText(cmd.Text)

	matched := 0
	for _, tok := range tokens {
		if !tok.HasSign() {
			fmt.Printf("%-15s no sign found\n", tok.Original)
			continue
		}
		matched++
		fmt.Printf("%-15s %s  %s\n", tok.Original, tok.Sign.Glyph, tok.Sign.Description)
		if cmd.Verbose {
			for i, step := range tok.Sign.Steps {
				fmt.Printf("                %d. %s\n", i+1, step)
			}
		}
	}

	fmt.Printf("\nMatched %d of %d words\n", matched, len(tokens))
	return nil
}

// playback runs the timed token-by-token reveal in the terminal, redrawing
// the line as characters appear.
func (cmd *TranslateCommand) playback(dict *signs.Dictionary) error {
	cfg := config.NewConfig()
	timing := signs.Timing{
		CharDelay:      cfg.Playback.CharDelay,
		ResetCharDelay: cfg.Playback.ResetCharDelay,
		TokenSlot:      cfg.Playback.TokenSlot,
	}

	translator := signs.NewTranslator(dict, nil, timing)
	translator.SetInput(cmd.Text)

	snap := translator.Snapshot()
	if len(snap.Tokens) == 0 {
		return fmt.Errorf("nothing to play")
	}

	translator.Play()

	deadline := time.Now().Add(time.Duration(len(snap.Tokens))*timing.TokenSlot + time.Second)
	for {
		snap = translator.Snapshot()
		fmt.Printf("\r%s", renderFrame(snap))
		if snap.Finished || time.Now().After(deadline) {
			break
		}
		time.Sleep(timing.CharDelay)
	}
	fmt.Println()

	return nil
}

func renderFrame(snap signs.Snapshot) string {
	var b strings.Builder
	for _, ch := range snap.Characters {
		switch {
		case ch.Revealed, ch.Char == ' ':
			b.WriteRune(ch.Char)
		default:
			b.WriteRune('·')
		}
	}
	if snap.CurrentSign != nil {
		b.WriteString("  ")
		b.WriteString(snap.CurrentSign.Glyph)
		b.WriteString(" ")
		b.WriteString(snap.CurrentSign.Description)
	}
	// Pad so a shorter frame fully overwrites the previous one
	b.WriteString(strings.Repeat(" ", 10))
	return b.String()
}
