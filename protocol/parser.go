package protocol

import (
	"strconv"
	"strings"
)

// Tokenize splits a line on single spaces. Repeated spaces are not collapsed
// and nothing is trimmed, so "A  B" yields ["A", "", "B"]. An empty line has
// no tokens.
func Tokenize(line string) []string {
	if line == "" {
		return nil
	}

	return strings.Split(line, " ")
}

// checkArgs bounds the number of arguments following the verb or code. Too
// few arguments are reported by the arg* helpers instead.
func checkArgs(tokens []string, expected int) error {
	if actual := len(tokens) - 1; actual > expected {
		return &TooManyArgumentsError{Expected: expected, Actual: actual}
	}

	return nil
}

func argString(tokens []string, name string, pos int) (string, error) {
	if pos >= len(tokens) {
		return "", &MissingArgumentError{Name: name}
	}

	return tokens[pos], nil
}

func argInt(tokens []string, name string, pos int) (int64, error) {
	raw, err := argString(tokens, name, pos)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &InvalidIntegerArgumentError{Argument: name, Value: raw}
	}

	return n, nil
}

// trailing returns everything after the first n tokens and their delimiting
// spaces, verbatim.
func trailing(line string, tokens []string, name string, n int) (string, error) {
	if n >= len(tokens) {
		return "", &MissingArgumentError{Name: name}
	}

	offset := 0
	for _, tok := range tokens[:n] {
		offset += len(tok) + 1
	}

	return line[offset:], nil
}
