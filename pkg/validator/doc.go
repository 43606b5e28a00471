// Package validator provides message-template validators for form inputs together
// with the lightweight Rule helpers used for ad-hoc checks.
//
// Two styles live side by side:
//
//   - Validator values (Alnum, NotEmpty, StringLength, Regex, InArray, Identical,
//     Between, RuleValidator) keep per-call failure messages keyed by a fixed
//     message key. They are attached to inputfilter inputs and report why the
//     last IsValid call failed.
//   - Rule values built by functions such as ValidEmail or MinLen pair a Check
//     function with translation-friendly error metadata. Apply evaluates them and
//     aggregates failures into ValidationErrors, which satisfies the error
//     interface.
//
// # Messages
//
// Every validator embeds Base, which owns the message templates. Templates may
// reference the %value% placeholder and validator specific variables such as
// %min% or %pattern%. Templates can be overridden with SetMessage and translated
// by attaching a Translator (the i18n package's Translator satisfies it):
//
//	v := validator.NewAlnum(validator.WithAllowWhiteSpace(true))
//	v.SetTranslator(translator, "de")
//	if !v.IsValid(input) {
//		for key, msg := range v.Messages() {
//			// key is validator.NotAlnum or validator.AlnumStringEmpty
//		}
//	}
//
// Translation keys are the message keys prefixed with "validator.", for example
// "validator.notAlnum". When no translation exists the template text is used.
//
// Messages are cleared at the start of every IsValid call, so a validator holds
// at most the result of its last run. Validators are not safe for concurrent use;
// create one per input.
//
// # Rules
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Get("email")
//	}
//
// Struct validates a bound struct using `validate` tags and reports failures in
// the same ValidationErrors shape.
package validator
