package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Failure reasons reported by the field rules.
const (
	ReasonPasswordRequired    = "비밀번호를 입력해주세요."
	ReasonPasswordLength      = "비밀번호는 6자 이상 10자 이하로 입력해주세요."
	ReasonPasswordCombination = "영문 소문자, 대문자, 숫자 중 2가지 이상을 조합해주세요."
	ReasonEmailRequired       = "이메일을 입력해주세요."
	ReasonEmailFormat         = "올바른 이메일 형식이 아닙니다."
	ReasonPhoneRequired       = "휴대폰 번호를 입력해주세요."
	ReasonPhoneFormat         = "010-0000-0000 형식으로 입력해주세요."
	ReasonNameRequired        = "이름을 입력해주세요."
	ReasonNameLength          = "이름은 20자 이하로 입력해주세요."
)

const (
	PasswordMinLength = 6
	PasswordMaxLength = 10
	NameMaxLength     = 20

	// DefaultNumberLabel names the value in Number reasons when no Label is given.
	DefaultNumberLabel = "값"
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex     = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
)

// Password requires 6..10 characters mixing at least two of lowercase,
// uppercase and digits.
func Password(password string) Verdict {
	if password == "" {
		return Fail(ReasonPasswordRequired)
	}

	length := utf8.RuneCountInString(password)
	if length < PasswordMinLength || length > PasswordMaxLength {
		return Fail(ReasonPasswordLength)
	}

	classes := 0
	for _, re := range []*regexp.Regexp{lowercaseRegex, uppercaseRegex, digitRegex} {
		if re.MatchString(password) {
			classes++
		}
	}
	if classes < 2 {
		return Fail(ReasonPasswordCombination)
	}

	return Pass()
}

// Email checks for a single @ followed by a dotted domain, no whitespace.
// Whitespace covers every Unicode space, the ideographic one included.
func Email(email string) Verdict {
	if email == "" {
		return Fail(ReasonEmailRequired)
	}
	if strings.IndexFunc(email, isSpace) >= 0 || !emailRegex.MatchString(email) {
		return Fail(ReasonEmailFormat)
	}
	return Pass()
}

// Phone accepts only the hyphenated mobile form 010-dddd-dddd.
func Phone(phone string) Verdict {
	if phone == "" {
		return Fail(ReasonPhoneRequired)
	}
	if !phoneRegex.MatchString(phone) {
		return Fail(ReasonPhoneFormat)
	}
	return Pass()
}

func Name(name string) Verdict {
	if strings.TrimSpace(name) == "" {
		return Fail(ReasonNameRequired)
	}
	if utf8.RuneCountInString(name) > NameMaxLength {
		return Fail(ReasonNameLength)
	}
	return Pass()
}

// Required fails with reason when value is empty or whitespace only.
func Required(value, reason string) Verdict {
	if strings.TrimSpace(value) == "" {
		return Fail(reason)
	}
	return Pass()
}

type numberOptions struct {
	min, max       float64
	hasMin, hasMax bool
	label          string
}

// NumberOption configures the Number rule.
type NumberOption func(*numberOptions)

// Min sets an inclusive lower bound.
func Min(v float64) NumberOption {
	return func(o *numberOptions) {
		o.min = v
		o.hasMin = true
	}
}

// Max sets an inclusive upper bound.
func Max(v float64) NumberOption {
	return func(o *numberOptions) {
		o.max = v
		o.hasMax = true
	}
}

// Label names the value in failure reasons.
func Label(label string) NumberOption {
	return func(o *numberOptions) {
		o.label = label
	}
}

// Number rejects NaN and values outside the configured bounds. The bounds are
// checked independently, min first.
func Number(value float64, opts ...NumberOption) Verdict {
	o := numberOptions{label: DefaultNumberLabel}
	for _, opt := range opts {
		opt(&o)
	}

	if math.IsNaN(value) {
		return Fail(fmt.Sprintf("%s은(는) 숫자여야 합니다.", o.label))
	}
	if o.hasMin && value < o.min {
		return Fail(fmt.Sprintf("%s은(는) %s 이상이어야 합니다.", o.label, formatBound(o.min)))
	}
	if o.hasMax && value > o.max {
		return Fail(fmt.Sprintf("%s은(는) %s 이하여야 합니다.", o.label, formatBound(o.max)))
	}
	return Pass()
}

// isSpace also treats the byte order mark as space, as browsers do.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// ParseNumber converts form input to a number. Blank input is 0 and anything
// unparsable is NaN, so the result can go straight into Number. Digit
// separators and the inf/nan spellings are unparsable; only "Infinity"
// with an optional sign names an infinite value.
func ParseNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0
	}
	if strings.ContainsRune(s, '_') {
		return math.NaN()
	}
	unsigned := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if unsigned == "Infinity" && len(s)-len(unsigned) <= 1 {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if word := strings.ToLower(unsigned); strings.HasPrefix(word, "inf") || strings.HasPrefix(word, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
