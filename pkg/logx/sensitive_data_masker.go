package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Bot API token inside request lines and URLs.
	regexp.MustCompile(`(/bot)\d+:[\w-]+(/)`),
	// Telegram update JSON fields.
	regexp.MustCompile(`(?s)("first_name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("last_name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("username":\s?").+?(")`),
	regexp.MustCompile(`(?s)("phone_number":\s?").+?(")`),
}

type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

// NewSensitiveDataMasker returns a masker for the built-in patterns plus any
// extra ones. Extra patterns must keep the surrounding text in groups 1 and 2.
func NewSensitiveDataMasker(extra ...*regexp.Regexp) SensitiveDataMasker {
	patterns := make([]*regexp.Regexp, 0, len(sensitiveDataPatterns)+len(extra))
	patterns = append(patterns, sensitiveDataPatterns...)
	patterns = append(patterns, extra...)

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
