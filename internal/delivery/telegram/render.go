package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/netquiz/internal/domain/entities"
)

// renderQuiz renders the quiz screen for v in HTML parse mode.
func renderQuiz(v entities.View) string {
	if v.Question == nil {
		return esc(msgLoading)
	}

	var sb strings.Builder

	sb.WriteString(bold("🌐 " + msgTitle))
	sb.WriteString("\n")
	sb.WriteString(renderScoreLine(v))
	sb.WriteString("\n\n")

	header := fmt.Sprintf("Question %d", v.Number)
	if v.Previous > 0 {
		header += fmt.Sprintf(" (← %d previous questions available)", v.Previous)
	}
	sb.WriteString(esc(header))
	sb.WriteString("\n")
	sb.WriteString(esc(fmt.Sprintf("%d of %d used", v.SeenCount, v.PoolSize)))
	sb.WriteString("\n\n")

	sb.WriteString(bold(v.Question.Prompt))
	sb.WriteString("\n\n")

	for i, option := range v.Question.Options {
		sb.WriteString(esc(optionButtonText(v, i, option)))
		sb.WriteString("\n")
	}

	if v.Revealed && v.Selected != "" {
		sb.WriteString("\n")
		sb.WriteString(renderResult(v))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderProgress(v))

	return sb.String()
}

// renderResult renders the explanation shown after an answer.
func renderResult(v entities.View) string {
	if v.SelectedCorrect() {
		return "✅ " + bold("Correct!") + " " + esc("Great job! You got it right.")
	}
	return "❌ " + bold("Incorrect!") + " " + esc("The correct answer is: "+v.Question.CorrectAnswer)
}

func renderScoreLine(v entities.View) string {
	return esc(fmt.Sprintf("Score: %d/%d · Accuracy: %d%%", v.Score, v.Answered, v.Accuracy))
}

func renderProgress(v entities.View) string {
	return esc(fmt.Sprintf("Progress %s %d / %d (%s)",
		buildProgressBar(v.SeenCount, v.PoolSize, progressBarLength),
		v.SeenCount,
		v.PoolSize,
		v.ProgressWidth(),
	))
}

// renderStats renders the /stats summary.
func renderStats(v entities.View) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s",
		bold("📊 Your progress"),
		esc(fmt.Sprintf("✅ Score: %d/%d", v.Score, v.Answered)),
		esc(fmt.Sprintf("🎯 Accuracy: %d%%", v.Accuracy)),
		esc(fmt.Sprintf("🔁 Round: %d", v.Round)),
		renderProgress(v),
	)
}
