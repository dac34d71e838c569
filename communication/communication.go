package communication

// Prompter asks a human a question and returns the line they typed.
type Prompter interface {
	Prompt(query string) (string, error)
}
