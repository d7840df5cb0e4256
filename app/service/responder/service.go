package responder

import (
	"strings"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

// Service selects a canned chat-widget response for an utterance.
// It is stateless and safe for concurrent use.
type Service struct {
	rules []Rule
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		rules: defaultRules,
	}, nil
}

// Reply returns exactly one response for any input, including the empty string.
// Matching is case-insensitive substring containment, so "restart" matches "start".
func (s *Service) Reply(utterance string) string {
	text := strings.ToLower(utterance)

	ruleIndex := pie.FindFirstUsing(s.rules, func(rule Rule) bool {
		return matches(rule, text)
	})
	if ruleIndex < 0 {
		return defaultResponse
	}

	return s.rules[ruleIndex].Response
}

// Match returns the name of the winning rule, or "default".
func (s *Service) Match(utterance string) string {
	text := strings.ToLower(utterance)

	for _, rule := range s.rules {
		if matches(rule, text) {
			return rule.Name
		}
	}

	return "default"
}

// Rules returns a copy of the rule table in priority order.
func (s *Service) Rules() []Rule {
	result := make([]Rule, len(s.rules))
	for i, rule := range s.rules {
		result[i] = Rule{
			Name:     rule.Name,
			Triggers: append([]string(nil), rule.Triggers...),
			Response: rule.Response,
		}
	}

	return result
}

func (s *Service) DefaultResponse() string {
	return defaultResponse
}

func matches(rule Rule, text string) bool {
	return pie.FindFirstUsing(rule.Triggers, func(trigger string) bool {
		return strings.Contains(text, trigger)
	}) >= 0
}
