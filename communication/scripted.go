package communication

import "io"

// Scripted replays a fixed list of answers. Queries are recorded so callers
// can check what was asked.
type Scripted struct {
	lines   []string
	Queries []string
}

func NewScripted(lines ...string) *Scripted {
	return &Scripted{lines: lines}
}

func (s *Scripted) Prompt(query string) (string, error) {
	s.Queries = append(s.Queries, query)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}
