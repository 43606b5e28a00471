// Package form builds server-side web forms out of elements and fieldsets and
// validates submitted data through an inputfilter.InputFilter.
//
// Elements that implement InputProvider, and fieldsets that implement
// InputFilterProvider, contribute default inputs to the form's input filter.
// The defaults are attached when the input filter is first requested and never
// replace entries that already exist, so explicit specifications win:
//
//	f := form.New("signup")
//	_ = f.Add(form.NewEmail("email"))
//	_ = f.Add(form.NewSelect("plan", []form.SelectOption{{Value: "free"}, {Value: "pro"}}))
//
//	if err := f.SetRequest(r); err != nil {
//		return err
//	}
//	valid, err := f.IsValid()
//	if err != nil {
//		return err
//	}
//	if !valid {
//		// f.FormMessages() or f.Err() describe the failures; elements carry
//		// their own messages for re-rendering.
//	}
//
//	var in SignupInput
//	err = f.Bind(&in)
//
// Submitted keys in bracket notation ("address[city]") are mapped to nested
// fieldsets. Forms can also be declared in YAML and built with
// Factory.CreateFromYAML; custom element types are added with
// Factory.RegisterType.
//
// Forms are not safe for concurrent use. Build one per request.
package form
