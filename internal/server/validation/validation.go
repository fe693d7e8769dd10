// Package validation implements the per-operation input checks that run
// before any store or security work. All violations of all fields are
// collected; only a failed "required" rule stops the remaining rules of its
// own field.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Violation is one failed rule on one field.
type Violation struct {
	Field   string
	Message string
}

// Result is either valid (no violations) or an ordered list of violations.
type Result struct {
	Violations []Violation
}

func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Message joins all violation messages with ", ".
func (r Result) Message() string {
	msgs := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, ", ")
}

// Err returns nil for a valid result, otherwise an invalid-input error
// carrying Message().
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return common.NewError(common.ErrorInvalidInput, r.Message())
}

// Rule checks a single string value.
type Rule struct {
	Message  string
	Required bool
	Check    func(value string) bool
}

// Validator accumulates violations field by field.
type Validator struct {
	res Result
}

func New() *Validator {
	return &Validator{}
}

// Field applies rules to value in order.
func (v *Validator) Field(name, value string, rules ...Rule) *Validator {
	for _, r := range rules {
		if r.Check(value) {
			continue
		}
		v.res.Violations = append(v.res.Violations, Violation{Field: name, Message: r.Message})
		if r.Required {
			break
		}
	}
	return v
}

func (v *Validator) Result() Result {
	return v.res
}

// Required fails on empty or whitespace-only values.
func Required(msg string) Rule {
	return Rule{Message: msg, Required: true, Check: func(s string) bool {
		return strings.TrimSpace(s) != ""
	}}
}

// Email checks the address grammar.
func Email(msg string) Rule {
	return Rule{Message: msg, Check: func(s string) bool {
		return validate.Var(s, "email") == nil
	}}
}

func MinLength(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}}
}

func MaxLength(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}}
}

func Matches(re *regexp.Regexp, msg string) Rule {
	return Rule{Message: msg, Check: re.MatchString}
}

// Equals fails unless the value equals other.
func Equals(other string, msg string) Rule {
	return Rule{Message: msg, Check: func(s string) bool {
		return s == other
	}}
}
