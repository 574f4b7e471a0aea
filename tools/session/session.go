// Package session runs the interactive generate/label/write/report loop.
//
// Each round walks three states: the length prompt is repeated until a
// positive integer arrives, the round itself collects the identity and label
// and writes the record, and the continuation prompt decides whether another
// round starts. Composition is always reported for the sequence before the
// label was injected.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/stat"

	"fasta_buddy_go/config"
	"fasta_buddy_go/tools/fasta_writer"
	"fasta_buddy_go/tools/seq_generator"
	"fasta_buddy_go/tools/seq_plot"
	"fasta_buddy_go/tools/seq_stats"
	common "fasta_buddy_go/utils"
)

// Prompts and messages shown to the user
const (
	PromptLength      = "Podaj długość sekwencji: "
	PromptID          = "Podaj ID sekwencji: "
	PromptDescription = "Podaj opis sekwencji: "
	PromptLabel       = "Podaj imię: "
	PromptContinue    = "Czy chcesz wygenerować kolejną sekwencję? (tak/nie): "

	MsgInvalidLength = "Proszę podać poprawną liczbę całkowitą."
	MsgLengthRange   = "Długość musi być większa od zera."
	MsgLengthTooLong = "Długość jest zbyt duża."
	MsgSaved         = "Sekwencja została zapisana do pliku %s"
	MsgPlotSaved     = "Wykres składu zapisano do pliku %s"
	MsgStatsHeader   = "Statystyki sekwencji:"
	MsgFarewell      = "Dziękujemy za użycie programu!"

	Affirmative = "tak"
)

var (
	ErrInvalidLength = errors.New("length is not an integer")
	ErrLengthRange   = errors.New("length must be greater than zero")
	ErrLengthTooLong = errors.New("length does not fit in an int")
)

// Session holds what a run of the loop needs. The zero Logger discards.
type Session struct {
	IO     IO
	Rand   seq_generator.Source
	Config config.Options
	Logger logr.Logger

	gcHistory []float64
}

func New(console IO, rng seq_generator.Source, opts config.Options, logger logr.Logger) *Session {
	return &Session{IO: console, Rand: rng, Config: opts, Logger: logger}
}

// Run loops until the user declines to continue or input runs out.
// Filesystem errors end the loop and are returned; bad lengths never are.
func (s *Session) Run(ctx context.Context) error {
	defer s.logSummary()

	for {
		length, err := s.readLength(ctx)
		if err != nil {
			return s.finish(err)
		}
		if err := s.round(ctx, length); err != nil {
			return s.finish(err)
		}

		answer, err := s.ask(ctx, PromptContinue)
		if err != nil {
			return s.finish(err)
		}
		if !Continue(answer) {
			s.IO.Println(MsgFarewell)
			return nil
		}
	}
}

// Rounds is the number of records written so far
func (s *Session) Rounds() int {
	return len(s.gcHistory)
}

// ParseLength turns user input into a sequence length
func ParseLength(in string) (int, error) {
	trimmed := strings.TrimSpace(in)
	n, err := strconv.Atoi(trimmed)
	if errors.Is(err, strconv.ErrRange) {
		// a well-formed integer that int cannot hold
		if strings.HasPrefix(trimmed, "-") {
			return 0, fmt.Errorf("%w: %s", ErrLengthRange, trimmed)
		}
		return 0, fmt.Errorf("%w: %s", ErrLengthTooLong, trimmed)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, in)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrLengthRange, n)
	}
	return n, nil
}

// Continue reports whether answer asks for another round
func Continue(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == Affirmative
}

// FormatReport renders the statistics block printed after each round
func FormatReport(comp seq_stats.Composition) []string {
	lines := []string{MsgStatsHeader}
	for i, sym := range seq_stats.Symbols {
		lines = append(lines, fmt.Sprintf("%c: %.1f%%", sym, comp.Percent[i]))
	}
	return append(lines,
		fmt.Sprintf("%%CG: %.1f", comp.GC),
		fmt.Sprintf("Stosunek CG/AT: %.2f", comp.GCATRatio),
	)
}

func (s *Session) readLength(ctx context.Context) (int, error) {
	for {
		in, err := s.ask(ctx, PromptLength)
		if err != nil {
			return 0, err
		}
		n, err := ParseLength(in)
		switch {
		case errors.Is(err, ErrInvalidLength):
			s.IO.Println(MsgInvalidLength)
		case errors.Is(err, ErrLengthRange):
			s.IO.Println(MsgLengthRange)
		case errors.Is(err, ErrLengthTooLong):
			s.IO.Println(MsgLengthTooLong)
		default:
			return n, nil
		}
		s.Logger.V(common.DEBUG).Info("rejected length", "input", in, "reason", err.Error())
	}
}

func (s *Session) round(ctx context.Context, length int) error {
	id, err := s.ask(ctx, PromptID)
	if err != nil {
		return err
	}
	desc, err := s.ask(ctx, PromptDescription)
	if err != nil {
		return err
	}
	label, err := s.ask(ctx, PromptLabel)
	if err != nil {
		return err
	}

	seq := seq_generator.GenerateDNA(s.Rand, length)
	comp := seq_stats.Calculate(seq)
	labeled, pos := seq_generator.InjectLabel(s.Rand, seq, label)
	s.Logger.V(common.DEBUG).Info("label injected", "id", id, "length", length, "offset", pos)

	path := fasta_writer.FileName(s.Config.OutDir, id)
	if err := fasta_writer.AppendRecord(path, fasta_writer.NewRecord(id, desc, labeled), s.Config.Width); err != nil {
		return err
	}
	s.gcHistory = append(s.gcHistory, comp.GC)
	s.Logger.Info("record written", "file", path, "length", len(labeled))

	s.IO.Println(fmt.Sprintf(MsgSaved, path))
	for _, line := range FormatReport(comp) {
		s.IO.Println(line)
	}

	if s.Config.Plot {
		plotPath := seq_plot.FileName(s.Config.OutDir, id)
		if err := seq_plot.SaveComposition(plotPath, id, comp); err != nil {
			return err
		}
		s.IO.Println(fmt.Sprintf(MsgPlotSaved, plotPath))
	}
	return nil
}

// ask checks for cancellation before every prompt
func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.IO.Prompt(prompt)
}

// finish turns running out of input into a normal goodbye
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.IO.Println()
		s.IO.Println(MsgFarewell)
		return nil
	}
	return err
}

func (s *Session) logSummary() {
	if len(s.gcHistory) == 0 {
		s.Logger.Info("session finished", "rounds", 0)
		return
	}
	mean := stat.Mean(s.gcHistory, nil)
	var sd float64
	if len(s.gcHistory) > 1 {
		sd = stat.StdDev(s.gcHistory, nil)
	}
	s.Logger.Info("session finished", "rounds", len(s.gcHistory), "meanGC", mean, "stdDevGC", sd)
}
