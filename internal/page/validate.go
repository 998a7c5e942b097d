package page

import "github.com/go-playground/validator/v10"

// validate is shared by all descriptors.  The `slug` tag accepts values
// that are already in normal form.
var validate = func() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("slug", validSlug); err != nil {
		panic(err)
	}
	return v
}()

func validSlug(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	n, err := NormalizeSlug(s)
	return err == nil && n == s
}
