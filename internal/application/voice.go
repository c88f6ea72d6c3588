package application

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrNotUnderstood means no rule matched the command text.
	ErrNotUnderstood = errors.New("command not understood")
	// ErrNoTemperature means a set-temperature command carried no
	// parseable number.
	ErrNoTemperature = errors.New("could not extract temperature value")
)

type IntentKind string

const (
	IntentLight     IntentKind = "light"
	IntentSetTemp   IntentKind = "set_temperature"
	IntentEmergency IntentKind = "emergency"
)

// Intent is the parsed meaning of a voice command.
type Intent struct {
	Kind       IntentKind
	LightState LightState
	TargetTemp float64
}

type voiceRule struct {
	match func(tokens map[string]bool) bool
	build func(tokens map[string]bool, text string) (Intent, error)
}

// Rules are tried in order; the first match decides the intent.
var voiceRules = []voiceRule{
	{
		match: func(t map[string]bool) bool { return (t["light"] || t["lights"]) && (t["on"] || t["off"]) },
		build: func(t map[string]bool, _ string) (Intent, error) {
			// "on" wins when both words appear.
			state := LightOff
			if t["on"] {
				state = LightOn
			}
			return Intent{Kind: IntentLight, LightState: state}, nil
		},
	},
	{
		match: func(t map[string]bool) bool { return t["temperature"] && t["set"] },
		build: func(_ map[string]bool, text string) (Intent, error) {
			v, err := extractTemperature(text)
			if err != nil {
				return Intent{}, err
			}
			return Intent{Kind: IntentSetTemp, TargetTemp: v}, nil
		},
	},
	{
		match: func(t map[string]bool) bool { return t["help"] || t["emergency"] },
		build: func(_ map[string]bool, _ string) (Intent, error) {
			return Intent{Kind: IntentEmergency}, nil
		},
	},
}

// ParseVoiceCommand lower-cases the text, tokenizes it into words, and
// matches the tokens against the rule table. Unmatched text returns
// ErrNotUnderstood.
func ParseVoiceCommand(text string) (Intent, error) {
	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	for _, rule := range voiceRules {
		if rule.match(tokens) {
			return rule.build(tokens, lower)
		}
	}

	return Intent{}, ErrNotUnderstood
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		tokens[w] = true
	}
	return tokens
}

// extractTemperature pulls the number out of "... set to <N> degrees".
// It takes the clause between "set to" and "degrees" and strips every
// non-digit character before parsing, so "21.5 degrees" yields 215, not
// 21.5. Whether a decimal should parse as 21.5 or fail outright is an
// open question; until answered the historical behavior stays.
func extractTemperature(text string) (float64, error) {
	clause := text
	if i := strings.Index(clause, "degrees"); i >= 0 {
		clause = clause[:i]
	}
	if i := strings.LastIndex(clause, "set to"); i >= 0 {
		clause = clause[i+len("set to"):]
	}

	var digits strings.Builder
	for _, r := range clause {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, ErrNoTemperature
	}

	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0, ErrNoTemperature
	}
	return v, nil
}
