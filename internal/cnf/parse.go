// Package cnf parses the textual knowledge-base format consumed by the
// resolution engine. A file carries a "Clauses:" header line; every
// subsequent non-blank line is one clause of whitespace-separated
// literals. A literal is optionally prefixed with '!' for negation and is
// either a bare predicate name or name(arg,...), where arguments follow
// the same grammar recursively. Identifiers starting with an uppercase
// letter are constants, lowercase are variables.
package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/prooflab/resolute/internal/logic"
)

// Parse reads clauses from r. Lines before the Clauses: header are
// ignored, as are blank lines. Malformed literal or term syntax is an
// error naming the offending line.
func Parse(r io.Reader) ([]logic.Clause, error) {
	var clauses []logic.Clause
	inClauses := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Clauses:") {
			inClauses = true
			continue
		}
		if !inClauses {
			continue
		}
		clause, err := parseClause(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !clause.IsEmpty() {
			clauses = append(clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return clauses, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]logic.Clause, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseClause(line string) (logic.Clause, error) {
	var literals []logic.Literal
	for _, field := range strings.Fields(line) {
		lit, err := parseLiteral(field)
		if err != nil {
			return logic.Clause{}, err
		}
		literals = append(literals, lit)
	}
	return logic.NewClause(literals), nil
}

func parseLiteral(tok string) (logic.Literal, error) {
	negated := strings.HasPrefix(tok, "!")
	if negated {
		tok = tok[1:]
	}
	if tok == "" {
		return logic.Literal{}, fmt.Errorf("empty literal")
	}
	if !strings.ContainsRune(tok, '(') {
		if !validIdent(tok) {
			return logic.Literal{}, fmt.Errorf("malformed literal %q", tok)
		}
		return logic.Literal{Name: tok, Negated: negated}, nil
	}
	name, args, err := parseCompound(tok)
	if err != nil {
		return logic.Literal{}, err
	}
	return logic.Literal{Name: name, Args: args, Negated: negated}, nil
}

func parseTerm(tok string) (logic.Term, error) {
	tok = strings.TrimSpace(tok)
	if !strings.ContainsRune(tok, '(') {
		if !validIdent(tok) {
			return nil, fmt.Errorf("malformed term %q", tok)
		}
		return logic.Symbol{Name: tok}, nil
	}
	name, args, err := parseCompound(tok)
	if err != nil {
		return nil, err
	}
	return logic.Function{Name: name, Args: args}, nil
}

func parseCompound(tok string) (string, []logic.Term, error) {
	open := strings.IndexByte(tok, '(')
	if open <= 0 || !strings.HasSuffix(tok, ")") {
		return "", nil, fmt.Errorf("malformed term %q", tok)
	}
	name := tok[:open]
	if !validIdent(name) {
		return "", nil, fmt.Errorf("malformed name in %q", tok)
	}
	var args []logic.Term
	for _, part := range splitArgs(tok[open+1 : len(tok)-1]) {
		arg, err := parseTerm(part)
		if err != nil {
			return "", nil, err
		}
		args = append(args, arg)
	}
	return name, args, nil
}

// splitArgs splits an argument string on top-level commas only, leaving
// commas inside nested argument lists alone.
func splitArgs(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

func validIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}
