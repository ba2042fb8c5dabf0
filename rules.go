package mindguard

import "strings"

// A Rule forces a label when any trigger occurs in the lowercased input and
// no exemption does. Matching is by plain substring, so "die" also fires
// inside "studies".
type Rule struct {
	Name       string
	Triggers   []string
	Exemptions []string
	Label      Label
}

// Match reports whether the rule decides lowered.
func (r Rule) Match(lowered string) bool {
	return containsAny(lowered, r.Triggers) && !containsAny(lowered, r.Exemptions)
}

// A RuleTable is an ordered list of rules; the first match wins.
type RuleTable []Rule

// Evaluate lowercases text and returns the first matching rule.
func (rt RuleTable) Evaluate(text string) (Rule, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range rt {
		if rule.Match(lowered) {
			return rule, true
		}
	}
	return Rule{}, false
}

// DefaultRules returns the built-in safety net, highest priority first.
//
// Only the listed phrases exempt a rule: "not die" or "no pain" still
// trigger the stress rule.
func DefaultRules() RuleTable {
	return RuleTable{
		{
			Name:     "unsure",
			Triggers: []string{"dont know", "unsure", "maybe", "idk", "dunno"},
			Label:    Unsure,
		},
		{
			Name:       "stress",
			Triggers:   []string{"stress", "bad", "worse", "not good", "pain", "sad", "die", "kill", "hopeless"},
			Exemptions: []string{"no stress", "not stressed"},
			Label:      Stress,
		},
		{
			Name:       "happy",
			Triggers:   []string{"happy", "good", "wow", "great", "calm", "relax", "joy", "best", "fine"},
			Exemptions: []string{"not happy", "not good"},
			Label:      NoStress,
		},
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
