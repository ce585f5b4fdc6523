package schematic

import "fmt"

// Test entities shared across the package tests. Each declares the minimum
// surface the tests need; none carry logic beyond their declarations.

// contact is the minimal two-field record: both fields required, both
// maskable, postal code constrained by pattern.
type contact struct {
	PostalCode string
	Address    string
}

func (contact) Hints() map[string]Hint {
	return map[string]Hint{
		"postalCode": {Type: TypeString, Pattern: `^\d{3}-\d{4}$`},
		"address":    {Type: TypeString, MinLength: Ptr(1)},
	}
}

func (contact) Required() []string { return []string{"postalCode", "address"} }
func (contact) Maskable() []string { return []string{"postalCode", "address"} }

func (c *contact) Fields() []Field {
	return []Field{
		{Name: "postalCode", Get: func() any { return c.PostalCode }, Set: SetString(&c.PostalCode)},
		{Name: "address", Get: func() any { return c.Address }, Set: SetString(&c.Address)},
	}
}

// order nests contact both as a single field and as an array element type.
// Only items is maskable; shipping is not, which the nested-masking tests
// rely on.
type order struct {
	ID       string
	Note     string
	Items    []string
	Shipping *contact
	Contacts []*contact
}

func (order) Hints() map[string]Hint {
	return map[string]Hint{
		"id":       {Type: TypeString},
		"note":     {Type: TypeString},
		"items":    {Type: TypeArray, Items: &Hint{Type: TypeString}},
		"shipping": {Type: TypeObject, Schema: MustSchema[contact]()},
		"contacts": {Type: TypeArray, Nullable: true, Items: &Hint{Schema: MustSchema[contact]()}},
	}
}

func (order) Required() []string { return []string{"id"} }
func (order) Maskable() []string { return []string{"items"} }

func (o *order) Fields() []Field {
	return []Field{
		{Name: "id", Get: func() any { return o.ID }, Set: SetString(&o.ID)},
		{Name: "note", Get: func() any { return o.Note }, Set: SetString(&o.Note)},
		{Name: "items", Get: func() any { return o.Items }, Set: SetStrings(&o.Items)},
		{Name: "shipping", Get: func() any { return o.Shipping }, Set: SetEntity[contact](&o.Shipping)},
		{Name: "contacts", Get: func() any { return o.Contacts }, Set: SetEntities[contact](&o.Contacts)},
	}
}

// account exercises masking of numbers and plain keyed structures. The
// maskable list includes "pin", which only matters inside the secrets
// container.
type account struct {
	Name    string
	Code    float64
	Secrets map[string]any
	Meta    map[string]any
}

func (account) Hints() map[string]Hint {
	return map[string]Hint{
		"name":    {Type: TypeString},
		"code":    {Type: TypeNumber},
		"secrets": {Type: TypeObject},
		"meta":    {Type: TypeObject},
	}
}

func (account) Required() []string { return []string{"name"} }
func (account) Maskable() []string { return []string{"code", "secrets", "pin"} }

func (a *account) Fields() []Field {
	return []Field{
		{Name: "name", Get: func() any { return a.Name }, Set: SetString(&a.Name)},
		{Name: "code", Get: func() any { return a.Code }, Set: SetNumber(&a.Code)},
		{Name: "secrets", Get: func() any { return a.Secrets }, Set: SetValue(&a.Secrets)},
		{Name: "meta", Get: func() any { return a.Meta }, Set: SetValue(&a.Meta)},
	}
}

// widget exercises constraint compilation, nullable fields, integer
// assignment, and the reserved field prefix.
type widget struct {
	Serial string
	Price  float64
	Count  int
	Label  *string
	hidden string
}

func (widget) Hints() map[string]Hint {
	return map[string]Hint{
		"serial":    {Type: TypeString, Pattern: `^[A-Z]{3}-\d{4}$`, MinLength: Ptr(8), MaxLength: Ptr(8)},
		"price":     {Type: TypeNumber, Minimum: Ptr(0.0), Maximum: Ptr(10000.0)},
		"count":     {Type: TypeInteger},
		"label":     {Type: TypeString, Nullable: true},
		"_internal": {Type: TypeString},
	}
}

func (widget) Required() []string { return []string{"serial"} }
func (widget) Maskable() []string { return nil }

func (w *widget) Fields() []Field {
	return []Field{
		{Name: "serial", Get: func() any { return w.Serial }, Set: SetString(&w.Serial)},
		{Name: "price", Get: func() any { return w.Price }, Set: SetNumber(&w.Price)},
		{Name: "count", Get: func() any { return w.Count }, Set: SetInt(&w.Count)},
		{Name: "label", Get: func() any { return w.Label }, Set: func(v any) error {
			if v == nil {
				w.Label = nil
				return nil
			}
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", v)
			}
			w.Label = &s
			return nil
		}},
		{Name: "_internal", Get: func() any { return w.hidden }, Set: SetString(&w.hidden)},
	}
}

// badDecl declares a required field with no hint.
type badDecl struct {
	Name string
}

func (badDecl) Hints() map[string]Hint {
	return map[string]Hint{"name": {Type: TypeString}}
}

func (badDecl) Required() []string { return []string{"name", "missing"} }
func (badDecl) Maskable() []string { return nil }

func (b *badDecl) Fields() []Field {
	return []Field{
		{Name: "name", Get: func() any { return b.Name }, Set: SetString(&b.Name)},
	}
}
