// Package entities contains domain entities used across the application.
package entities

// OptionsPerQuestion is the number of choices every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple-choice question from the dataset.
// Questions are loaded once at startup and never mutated.
type Question struct {
	Name          string   `json:"name"`          // unique question identifier
	Prompt        string   `json:"question"`      // question text shown to the user
	Options       []string `json:"options"`       // ordered answer options
	CorrectAnswer string   `json:"correctAnswer"` // must equal one of Options
}

// IsCorrect reports whether option is the correct answer.
func (q *Question) IsCorrect(option string) bool {
	return option == q.CorrectAnswer
}

// HasOption reports whether option is one of the question's options.
func (q *Question) HasOption(option string) bool {
	return q.OptionIndex(option) >= 0
}

// OptionIndex returns the position of option, or -1 if it is absent.
func (q *Question) OptionIndex(option string) int {
	for i, o := range q.Options {
		if o == option {
			return i
		}
	}
	return -1
}

// OptionAt returns the option at index i.
func (q *Question) OptionAt(i int) (string, bool) {
	if i < 0 || i >= len(q.Options) {
		return "", false
	}
	return q.Options[i], true
}

// OptionLetter returns the display letter for option index i ("A" for 0).
func OptionLetter(i int) string {
	return string(rune('A' + i))
}
