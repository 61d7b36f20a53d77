package ui

import (
	"fmt"
	"strings"
)

// command is one parsed input line: a verb, positional arguments and
// key=value pairs. Values may be double-quoted to include spaces.
type command struct {
	verb string
	args []string
	kv   map[string]string
}

func parseCommand(line string) (command, error) {
	tokens, err := splitTokens(line)
	if err != nil {
		return command{}, err
	}
	cmd := command{kv: make(map[string]string)}
	if len(tokens) == 0 {
		return cmd, nil
	}
	cmd.verb = strings.ToLower(tokens[0])
	for _, tok := range tokens[1:] {
		if k, v, ok := strings.Cut(tok, "="); ok && k != "" {
			cmd.kv[k] = v
			continue
		}
		cmd.args = append(cmd.args, tok)
	}
	return cmd, nil
}

func splitTokens(line string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				tokens = append(tokens, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if started {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
