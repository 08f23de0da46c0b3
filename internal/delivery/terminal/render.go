package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"

	checkMark = "✓"
	crossMark = "✗"

	barWidth = 20
)

// renderer turns views into screen lines. Colors are off for non-interactive output.
type renderer struct {
	color bool
}

func (r renderer) colorize(s, color string) string {
	if !r.color || color == "" {
		return s
	}
	return color + s + colorReset
}

// lines renders the quiz screen for v.
func (r renderer) lines(v entities.View) []string {
	if v.Question == nil {
		return []string{"Loading question..."}
	}

	header := fmt.Sprintf("Question %d", v.Number)
	if v.Previous > 0 {
		header += r.colorize(fmt.Sprintf(" (← %d previous questions available)", v.Previous), colorCyan)
	}

	lines := []string{
		r.colorize("Networking Quiz", colorBold+colorCyan),
		fmt.Sprintf("Score: %d/%d   Accuracy: %d%%", v.Score, v.Answered, v.Accuracy),
		"",
		fmt.Sprintf("%s   %d of %d used", header, v.SeenCount, v.PoolSize),
		r.colorize(v.Question.Prompt, colorBold),
		"",
	}

	for i, option := range v.Question.Options {
		lines = append(lines, r.option(v, i, option))
	}

	if v.Revealed && v.Selected != "" {
		lines = append(lines, "")
		if v.SelectedCorrect() {
			lines = append(lines, r.colorize("Correct! Great job! You got it right.", colorGreen+colorBold))
		} else {
			lines = append(lines, r.colorize("Incorrect! The correct answer is: "+v.Question.CorrectAnswer, colorRed+colorBold))
		}
	}

	lines = append(lines, "", r.progress(v), "", r.hints(v))

	return lines
}

func (r renderer) option(v entities.View, i int, option string) string {
	line := fmt.Sprintf("  %s) %s", entities.OptionLetter(i), option)
	if v.Selected == "" {
		return line
	}

	switch {
	case v.Question.IsCorrect(option):
		return r.colorize(line+" "+checkMark, colorGreen)
	case option == v.Selected:
		return r.colorize(line+" "+crossMark, colorRed)
	default:
		return line
	}
}

func (r renderer) progress(v entities.View) string {
	filled := 0
	if v.PoolSize > 0 {
		filled = v.SeenCount * barWidth / v.PoolSize
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := "[" + r.colorize(strings.Repeat("#", filled), colorGreen+colorBold) + strings.Repeat("-", barWidth-filled) + "]"
	return fmt.Sprintf("Progress %s %d / %d (%s)", bar, v.SeenCount, v.PoolSize, v.ProgressWidth())
}

func (r renderer) hints(v entities.View) string {
	var hints []string
	if v.Selected == "" {
		hints = append(hints, "1-4/A-D answer")
	}
	if v.CanAdvance {
		hints = append(hints, "Enter/Space next")
	}
	if v.CanRetreat {
		hints = append(hints, "← previous")
	}
	hints = append(hints, "r restart", "q quit")

	return r.colorize(strings.Join(hints, " · "), colorYellow)
}
