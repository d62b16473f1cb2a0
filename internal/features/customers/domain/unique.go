package domain

// UniqueField names a customer attribute that must not repeat across customers.
type UniqueField string

const (
	FieldLockerCode UniqueField = "codigoCasillero"
	FieldEmail      UniqueField = "email"
	FieldIdentity   UniqueField = "identidad"
)

// UniqueFields lists the unique attributes in the order they are checked.
var UniqueFields = []UniqueField{FieldLockerCode, FieldEmail, FieldIdentity}

// Value returns the attribute of c named by f.
func (f UniqueField) Value(c *Customer) string {
	switch f {
	case FieldLockerCode:
		return c.LockerCode
	case FieldEmail:
		return c.Email
	case FieldIdentity:
		return c.Identity
	default:
		return ""
	}
}

// DuplicateMessage is shown when another customer already holds the value.
func (f UniqueField) DuplicateMessage() string {
	switch f {
	case FieldLockerCode:
		return "Ya existe un cliente con ese código de casillero"
	case FieldEmail:
		return "Ya existe un cliente con ese email"
	case FieldIdentity:
		return "Ya existe un cliente con esa identidad"
	default:
		return "Ya existe un cliente con esos datos"
	}
}
