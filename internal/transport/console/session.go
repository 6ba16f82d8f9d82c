package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"passcheck/internal/domain/entity"
	"passcheck/internal/domain/service/strength"
	"passcheck/pkg/contextx"
	"passcheck/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Recorder получает каждую оценку и каждый отклонённый пустой ввод
type Recorder interface {
	Observe(e entity.Evaluation)
	EmptyInput()
}

type nopRecorder struct{}

func (nopRecorder) Observe(entity.Evaluation) {}
func (nopRecorder) EmptyInput()               {}

// Session цикл "спросить, оценить, показать" до ключевого слова выхода
type Session struct {
	in          io.Reader
	out         io.Writer
	renderer    *Renderer
	evaluate    func(string) entity.Evaluation
	recorder    Recorder
	exitKeyword string
}

func NewSession(in io.Reader, out io.Writer, renderer *Renderer, exitKeyword string) *Session {
	return &Session{
		in:          in,
		out:         out,
		renderer:    renderer,
		evaluate:    strength.Evaluate,
		recorder:    nopRecorder{},
		exitKeyword: exitKeyword,
	}
}

func (s *Session) WithRecorder(r Recorder) *Session {
	if r != nil {
		s.recorder = r
	}

	return s
}

type line struct {
	text string
	err  error
}

// Run блокируется до ввода ключевого слова, EOF или отмены контекста.
// Чтение идёт в отдельной горутине, чтобы Ctrl+C не ждал Enter.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan line)

	go s.readLines(ctx, lines)

	if err := s.renderer.Welcome(s.out); err != nil {
		return err
	}

	evaluated := 0

	defer func() {
		logger(ctx).Info("session finished", slog.Int("evaluated", evaluated))
	}()

	for {
		if err := s.renderer.Prompt(s.out, s.exitKeyword); err != nil {
			return err
		}

		var l line

		select {
		case <-ctx.Done():
			return fmt.Errorf("session interrupted: %w", ctx.Err())
		case l = <-lines:
		}

		if l.err != nil {
			if errors.Is(l.err, io.EOF) {
				return s.renderer.Farewell(s.out)
			}

			return fmt.Errorf("read input: %w", l.err)
		}

		input := l.text

		if strings.EqualFold(input, s.exitKeyword) {
			return s.renderer.Farewell(s.out)
		}

		if input == "" {
			s.recorder.EmptyInput()

			if err := s.renderer.EmptyInput(s.out); err != nil {
				return err
			}

			continue
		}

		result := s.evaluate(input)
		evaluated++

		s.recorder.Observe(result)

		logger(ctx).Debug("password evaluated",
			logx.Stringer(logx.FieldStrength, result.Strength),
			slog.Int(logx.FieldScore, result.Score),
			slog.Int(logx.FieldLength, result.Length),
			slog.Float64(logx.FieldEntropyBits, result.EntropyBits),
		)

		if err := s.renderer.Render(s.out, result); err != nil {
			return err
		}
	}
}

// readLines отдаёт строки без завершающего перевода строки. Последняя строка
// без \n тоже отдаётся, затем io.EOF.
func (s *Session) readLines(ctx context.Context, lines chan<- line) {
	reader := bufio.NewReader(s.in)

	for {
		text, err := reader.ReadString('\n')

		var l line

		switch {
		case err == nil:
			l = line{text: trimNewline(text)}
		case errors.Is(err, io.EOF) && text != "":
			l = line{text: trimNewline(text)}
			err = nil
		default:
			l = line{err: err}
		}

		select {
		case lines <- l:
		case <-ctx.Done():
			return
		}

		if l.err != nil {
			return
		}

		if err == nil && !strings.HasSuffix(text, "\n") {
			// a final line without newline was delivered, EOF comes next
			select {
			case lines <- line{err: io.EOF}:
			case <-ctx.Done():
			}

			return
		}
	}
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")

	return strings.TrimSuffix(s, "\r")
}
