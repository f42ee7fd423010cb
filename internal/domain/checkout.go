package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/go-playground/validator/v10"
)

// CheckoutForm is the billing form as typed by the user.
type CheckoutForm struct {
	Name          string `json:"name"           validate:"required"`
	Email         string `json:"email"          validate:"omitempty,email"`
	Phone         string `json:"phone"          validate:"required"`
	Address       string `json:"address"        validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		_, ok := ParsePaymentMethod(fl.Field().String())
		return ok
	})
	return v
}

func (f CheckoutForm) trimmed() CheckoutForm {
	return CheckoutForm{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		Address:       strings.TrimSpace(f.Address),
		PaymentMethod: strings.TrimSpace(f.PaymentMethod),
	}
}

// Validate checks the form for identity. A guest must supply a well-formed
// email; an authenticated user's email field is ignored.
func (f CheckoutForm) Validate(identity Identity) error {
	f = f.trimmed()
	var fields []FieldError

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating checkout form: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, fieldError(fe))
		}
	}

	switch identity.(type) {
	case Guest:
		if f.Email == "" {
			fields = append(fields, FieldError{Field: "email", Message: "email is required"})
		}
	case Authenticated:
		// The account email wins; whatever the form says is not validated.
		fields = dropField(fields, "email")
	default:
		return fmt.Errorf("unknown identity %T", identity)
	}

	if len(fields) > 0 {
		return NewValidationError("invalid checkout form", fields...)
	}
	return nil
}

// BuildOrderRequest assembles the order payload from the form and quote.
// Items and total both come from q, so they always agree.
func BuildOrderRequest(form CheckoutForm, identity Identity, q Quote) (OrderRequest, error) {
	if q.Snapshot.IsEmpty() {
		return OrderRequest{}, ErrEmptyCart
	}
	if err := form.Validate(identity); err != nil {
		return OrderRequest{}, err
	}
	form = form.trimmed()
	pm, _ := ParsePaymentMethod(form.PaymentMethod)

	var email string
	switch id := identity.(type) {
	case Guest:
		email = form.Email
	case Authenticated:
		email = id.Email
	}

	items := make([]OrderRequestItem, 0, len(q.Snapshot.Items))
	for _, it := range q.Snapshot.Items {
		items = append(items, OrderRequestItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		})
	}

	return OrderRequest{
		Name:          form.Name,
		Email:         email,
		Phone:         form.Phone,
		Address:       form.Address,
		TotalPrice:    q.TotalString(),
		PaymentMethod: pm,
		Items:         items,
	}, nil
}

func fieldError(fe validator.FieldError) FieldError {
	name := humanize(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = name + " is required"
	case "email":
		msg = name + " must be a valid email address"
	case "payment_method":
		opts := make([]string, len(PaymentMethods))
		for i, pm := range PaymentMethods {
			opts[i] = string(pm)
		}
		msg = fmt.Sprintf("%s must be one of %s", name, strings.Join(opts, ", "))
	default:
		msg = fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
	return FieldError{Field: strings.ReplaceAll(name, " ", "_"), Message: msg}
}

// humanize turns a Go field name into lower-case words: PaymentMethod → "payment method".
func humanize(field string) string {
	words := camelcase.Split(field)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, " ")
}

func dropField(fields []FieldError, name string) []FieldError {
	out := fields[:0]
	for _, f := range fields {
		if f.Field != name {
			out = append(out, f)
		}
	}
	return out
}
