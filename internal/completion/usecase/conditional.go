package usecase

import (
	"regexp"
	"strings"
)

var conditionalRes = []*regexp.Regexp{
	regexp.MustCompile(`\bif\s+.*\s+then\b`),
	regexp.MustCompile(`\bif\s+.*\s+change`),
	regexp.MustCompile(`\bwhen\s+.*\s+happens\b`),
	regexp.MustCompile(`\bafter\s+.*\s+approval\b`),
	regexp.MustCompile(`\brequiring\s+.*\s+approval\b`),
	regexp.MustCompile(`\bescalates?\s+if\b`),
	regexp.MustCompile(`\bif\s+.*\s+exceeds?\b`),
	regexp.MustCompile(`\bafter\s+.*\s+sign-?off\b`),
	regexp.MustCompile(`\bdepends?\s+on\b`),
	regexp.MustCompile(`\bconditional\s+on\b`),
}

func (uc *implUseCase) HasConditionalLogic(message string) bool {
	lower := strings.ToLower(message)
	for _, re := range conditionalRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
