package form

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/inputfilter"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// CsrfMessage replaces the validator messages of a failed token check.
const CsrfMessage = "The form submitted did not originate from the expected site"

// Csrf carries an anti-forgery token. The submitted value must equal the
// token; the element value always stays the token.
type Csrf struct {
	Base
	token string
	input *inputfilter.Input
}

var (
	_ InputProvider = (*Csrf)(nil)
	_ PrepareAware  = (*Csrf)(nil)
	_ inputBinder   = (*Csrf)(nil)
)

// NewCsrf returns a Csrf element. Without SetToken a random token is
// generated on first use.
func NewCsrf(name string, opts ...ElementOption) *Csrf {
	return &Csrf{Base: NewBase(name, "hidden", opts...)}
}

// Token returns the expected token, generating one when none is set.
func (e *Csrf) Token() string {
	if e.token == "" {
		e.token = uuid.NewString()
	}
	return e.token
}

// SetToken sets the expected token, usually the one stored in the session.
// When the form already built the input for this element, its identical
// validator is updated too.
func (e *Csrf) SetToken(token string) {
	e.token = token
	if e.input == nil {
		return
	}
	for _, v := range e.input.Validators() {
		if id, ok := v.(*validator.Identical); ok {
			id.SetToken(e.Token())
		}
	}
}

func (e *Csrf) bindInput(in *inputfilter.Input) {
	e.input = in
}

func (e *Csrf) Value() any { return e.Token() }

// SetValue is a no-op; submitted values are checked, never kept.
func (e *Csrf) SetValue(any) {}

func (e *Csrf) PrepareElement(*Form) {
	e.Token()
}

func (e *Csrf) InputSpecification() inputfilter.InputSpec {
	return inputfilter.InputSpec{
		Name:     e.Name(),
		Required: true,
		Filters:  []inputfilter.FilterSpec{{Name: "trim"}},
		Validators: []inputfilter.ValidatorSpec{
			{
				Name:    "identical",
				Options: inputfilter.Options{"token": e.Token()},
				Messages: map[string]string{
					validator.NotSame:      CsrfMessage,
					validator.MissingToken: CsrfMessage,
				},
			},
		},
	}
}
