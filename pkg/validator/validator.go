package validator

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Validator checks a single value and keeps the messages of the last failure.
type Validator interface {
	IsValid(value any) bool
	Messages() Messages
}

// Messages maps a message key to its rendered text.
type Messages map[string]string

// Translator translates message keys. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// TranslationPrefix is prepended to message keys before they are handed to a Translator.
const TranslationPrefix = "validator."

// Base carries the message templates shared by all validators in this package.
// It is embedded by value; the zero value is not usable, validators build it
// with newBase.
type Base struct {
	templates     map[string]string
	messages      Messages
	translator    Translator
	lang          string
	valueObscured bool
	messageLength int
}

func newBase(templates map[string]string) Base {
	return Base{
		templates: maps.Clone(templates),
		messages:  Messages{},
	}
}

// Messages returns a copy of the messages recorded by the last IsValid call.
func (b *Base) Messages() Messages {
	out := make(Messages, len(b.messages))
	maps.Copy(out, b.messages)
	return out
}

// MessageTemplates returns a copy of the templates currently in use.
func (b *Base) MessageTemplates() map[string]string {
	return maps.Clone(b.templates)
}

// SetMessage overrides the template for key.
func (b *Base) SetMessage(key, template string) error {
	if _, ok := b.templates[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMessageKey, key)
	}
	b.templates[key] = template
	return nil
}

// SetMessages overrides every template in the map. Nothing is changed when one
// of the keys is unknown.
func (b *Base) SetMessages(templates map[string]string) error {
	for key := range templates {
		if _, ok := b.templates[key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMessageKey, key)
		}
	}
	maps.Copy(b.templates, templates)
	return nil
}

// SetTranslator attaches a translator used for the given language.
// A nil translator disables translation.
func (b *Base) SetTranslator(tr Translator, lang string) {
	b.translator = tr
	b.lang = lang
}

// SetValueObscured masks the value in rendered messages with asterisks.
func (b *Base) SetValueObscured(obscured bool) {
	b.valueObscured = obscured
}

// SetMessageLength truncates rendered messages to n characters. Zero disables truncation.
func (b *Base) SetMessageLength(n int) {
	b.messageLength = max(n, 0)
}

func (b *Base) reset() {
	clear(b.messages)
}

// fail records the message for key. vars are name/value pairs substituted as %name%.
func (b *Base) fail(key string, value any, vars ...string) {
	tmpl, ok := b.templates[key]
	if !ok {
		return
	}

	rendered := b.renderValue(value)
	if b.translator != nil {
		args := make([]string, 0, len(vars)+2)
		args = append(args, "value", rendered)
		args = append(args, vars...)
		trKey := TranslationPrefix + key
		if tr := b.translator.T(b.lang, trKey, args...); tr != "" && tr != trKey {
			tmpl = tr
		}
	}

	msg := strings.ReplaceAll(tmpl, "%value%", rendered)
	for i := 0; i+1 < len(vars); i += 2 {
		msg = strings.ReplaceAll(msg, "%"+vars[i]+"%", vars[i+1])
	}

	if b.messageLength > 0 && len([]rune(msg)) > b.messageLength {
		runes := []rune(msg)
		if b.messageLength <= 3 {
			msg = string(runes[:b.messageLength])
		} else {
			msg = string(runes[:b.messageLength-3]) + "..."
		}
	}

	b.messages[key] = msg
}

func (b *Base) renderValue(value any) string {
	var s string
	switch v := value.(type) {
	case nil:
		s = ""
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		if str, ok := scalarString(value); ok {
			s = str
		} else {
			s = fmt.Sprintf("%T", value)
		}
	}
	if b.valueObscured {
		return strings.Repeat("*", len([]rune(s)))
	}
	return s
}

// scalarString converts strings and numbers to their string form.
// Any other type is rejected.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// numericValue converts numbers and numeric strings to float64.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	if s, ok := scalarString(value); ok {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}
