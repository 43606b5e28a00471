package validator

import (
	"fmt"
	"strings"
)

// RuleInvalid is reported when a RuleValidator receives a non-scalar value.
const RuleInvalid = "ruleInvalid"

// RuleValidator adapts a RuleFunc to the Validator interface so Rule helpers can
// be attached to inputs. Failures are keyed by the rule's translation key.
type RuleValidator struct {
	build      RuleFunc
	messages   Messages
	translator Translator
	lang       string
}

// NewRuleValidator wraps build. Panics when build is nil.
func NewRuleValidator(build RuleFunc) *RuleValidator {
	if build == nil {
		panic("validator: nil RuleFunc")
	}
	return &RuleValidator{build: build, messages: Messages{}}
}

func (v *RuleValidator) SetTranslator(tr Translator, lang string) {
	v.translator = tr
	v.lang = lang
}

func (v *RuleValidator) IsValid(value any) bool {
	clear(v.messages)

	s, ok := scalarString(value)
	if !ok {
		v.messages[RuleInvalid] = "Invalid type given. String, integer or float expected"
		return false
	}

	rule := v.build("", s)
	if rule.Check() {
		return true
	}

	msg := rule.Error.Message
	if v.translator != nil && rule.Error.TranslationKey != "" {
		args := make([]string, 0, len(rule.Error.TranslationValues)*2)
		for k, val := range rule.Error.TranslationValues {
			args = append(args, k, fmt.Sprint(val))
		}
		if tr := v.translator.T(v.lang, rule.Error.TranslationKey, args...); tr != "" && tr != rule.Error.TranslationKey {
			msg = tr
		}
	}

	key := strings.TrimPrefix(rule.Error.TranslationKey, "validation.")
	if key == "" {
		key = "rule"
	}
	v.messages[key] = msg
	return false
}

func (v *RuleValidator) Messages() Messages {
	out := make(Messages, len(v.messages))
	for k, m := range v.messages {
		out[k] = m
	}
	return out
}
