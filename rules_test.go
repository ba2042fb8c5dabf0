package mindguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRulesOrder(t *testing.T) {
	rules := DefaultRules()
	var names []string
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"unsure", "stress", "happy"}, names)
	assert.Equal(t, []Label{Unsure, Stress, NoStress}, []Label{rules[0].Label, rules[1].Label, rules[2].Label})
}

func TestRuleTableEvaluate(t *testing.T) {
	tests := []struct {
		text    string
		matched bool
		rule    string
	}{
		{"I dunno, I feel bad", true, "unsure"},
		{"MAYBE it is fine", true, "unsure"},
		{"this is bad", true, "stress"},
		{"not die", true, "stress"},
		{"so many studies", true, "stress"}, // "die" inside "studies"
		{"no stress, all good", true, "happy"},
		{"I am not stressed, just calm", true, "happy"},
		{"not good", true, "stress"}, // a stress trigger itself
		{"not happy", false, ""},
		{"the weather", false, ""},
		{"", false, ""},
	}

	rules := DefaultRules()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rule, ok := rules.Evaluate(tt.text)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.rule, rule.Name)
		})
	}
}

func TestRuleMatch(t *testing.T) {
	r := Rule{Name: "x", Triggers: []string{"storm"}, Exemptions: []string{"no storm"}, Label: Stress}
	assert.True(t, r.Match("a storm is coming"))
	assert.False(t, r.Match("no storm today"))
	assert.False(t, r.Match("sunshine"))
	assert.False(t, Rule{Name: "empty"}.Match("anything"))
}
