package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultNumberTemplate yields numbers like INV-20260115-000042.
const DefaultNumberTemplate = "INV-{YYYY}{MM}{DD}-{SEQ6}"

// Number renders an invoice number from a token template, the issue time
// and a monotonic per-day sequence. Pure and deterministic.
//
// Tokens: {YYYY} {YY} {MM} {DD} {SEQ} {SEQn} (zero-padded to n digits).
func Number(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	var out strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:open])
		rest = rest[open+1:]

		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return "", fmt.Errorf("unterminated token in invoice format %q", template)
		}
		token := rest[:closing]
		rest = rest[closing+1:]

		expanded, err := expand(token, issuedAt, seq)
		if err != nil {
			return "", err
		}
		out.WriteString(expanded)
	}

	result := out.String()
	if strings.ContainsAny(result, "{}") {
		return "", fmt.Errorf("unresolved token in invoice format: %s", result)
	}
	return result, nil
}

func expand(token string, issuedAt time.Time, seq int64) (string, error) {
	switch token {
	case "YYYY":
		return issuedAt.Format("2006"), nil
	case "YY":
		return issuedAt.Format("06"), nil
	case "MM":
		return issuedAt.Format("01"), nil
	case "DD":
		return issuedAt.Format("02"), nil
	case "SEQ":
		return strconv.FormatInt(seq, 10), nil
	}

	if width, ok := strings.CutPrefix(token, "SEQ"); ok {
		n, err := strconv.Atoi(width)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("bad sequence token {%s}", token)
		}
		return fmt.Sprintf("%0*d", n, seq), nil
	}

	return "", fmt.Errorf("unknown token {%s}", token)
}
