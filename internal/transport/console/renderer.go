package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"passcheck/internal/domain/entity"
	"passcheck/internal/domain/service/strength"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer превращает Evaluation в текст. Никаких вычислений, только формат.
type Renderer struct {
	format string
	colors map[entity.Strength]*color.Color
}

func NewRenderer(format string, colored bool) *Renderer {
	colors := make(map[entity.Strength]*color.Color, len(strengthHints))

	for s, hint := range strengthHints {
		c := color.New(hint.color)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		colors[s] = c
	}

	if format != FormatJSON {
		format = FormatText
	}

	return &Renderer{
		format: format,
		colors: colors,
	}
}

// Interactive false для JSON: вывод предназначен для машин, подсказки не печатаются.
func (r *Renderer) Interactive() bool {
	return r.format == FormatText
}

type evaluationJSON struct {
	Score       int               `json:"score"`
	MaxScore    int               `json:"maxScore"`
	Strength    entity.Strength   `json:"strength"`
	Length      int               `json:"length"`
	EntropyBits float64           `json:"entropyBits"`
	CrackTime   entity.CrackTime  `json:"crackTime"`
	Feedback    []entity.Feedback `json:"feedback"`
}

func (r *Renderer) Render(w io.Writer, e entity.Evaluation) error {
	if r.format == FormatJSON {
		return r.renderJSON(w, e)
	}

	return r.renderText(w, e)
}

func (r *Renderer) renderJSON(w io.Writer, e entity.Evaluation) error {
	out := evaluationJSON{
		Score:       e.Score,
		MaxScore:    strength.MaxDisplayScore,
		Strength:    e.Strength,
		Length:      e.Length,
		EntropyBits: e.EntropyBits,
		CrackTime:   e.CrackTime,
		Feedback:    e.Feedback,
	}

	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func (r *Renderer) renderText(w io.Writer, e entity.Evaluation) error {
	heavy := strings.Repeat("=", bannerWidth)
	light := strings.Repeat("-", bannerWidth)

	label := e.Strength.String()
	if hint, ok := strengthHints[e.Strength]; ok {
		label += " " + hint.symbol
	}

	title := "PASSWORD STRENGTH: " + label
	if c, ok := r.colors[e.Strength]; ok {
		title = c.Sprint(title)
	}

	var b strings.Builder

	b.WriteString("\n" + heavy + "\n")
	b.WriteString(title + "\n")
	b.WriteString(heavy + "\n")
	fmt.Fprintf(&b, "Score: %d/%d\n", e.Score, strength.MaxDisplayScore)
	fmt.Fprintf(&b, "Length: %d characters\n", e.Length)
	fmt.Fprintf(&b, "Entropy: %.1f bits\n", e.EntropyBits)
	fmt.Fprintf(&b, "Estimated crack time: %s\n", e.CrackTime)
	b.WriteString("\n" + light + "\n")
	b.WriteString("FEEDBACK:\n")
	b.WriteString(light + "\n")

	for _, f := range e.Feedback {
		fmt.Fprintf(&b, "  %s %s\n", severityMarkers[f.Severity], f.Message)
	}

	b.WriteString(heavy + "\n\n")

	return write(w, b.String())
}

func (r *Renderer) Welcome(w io.Writer) error {
	if !r.Interactive() {
		return nil
	}

	heavy := strings.Repeat("=", bannerWidth)

	var b strings.Builder

	b.WriteString("\n" + heavy + "\n")
	b.WriteString(WelcomeTitle + "\n")
	b.WriteString(heavy + "\n")
	b.WriteString("Tips for strong passwords:\n")

	for _, tip := range tips {
		b.WriteString("  • " + tip + "\n")
	}

	b.WriteString(heavy + "\n\n")

	return write(w, b.String())
}

func (r *Renderer) Prompt(w io.Writer, exitKeyword string) error {
	if !r.Interactive() {
		return nil
	}

	return write(w, fmt.Sprintf(PromptFormat, exitKeyword))
}

func (r *Renderer) EmptyInput(w io.Writer) error {
	if !r.Interactive() {
		return nil
	}

	return write(w, EmptyInput+"\n\n")
}

func (r *Renderer) Farewell(w io.Writer) error {
	if !r.Interactive() {
		return nil
	}

	return write(w, "\n"+Farewell+"\n\n")
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
