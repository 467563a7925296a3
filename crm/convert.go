package crm

import (
	"fmt"
	"time"

	"record-mapper/object"
	"record-mapper/schema"
)

// ToObject converts the account and its users. Zero values are left unset.
func (a *Account) ToObject() *object.Object {
	return newConverter().account(a)
}

// ToObject converts the user and its parent account. Zero values are left unset.
func (u *User) ToObject() *object.Object {
	return newConverter().user(u)
}

// converter memoizes by pointer so a user whose Account lists it again
// converts to one shared object graph.
type converter struct {
	accounts map[*Account]*object.Object
	users    map[*User]*object.Object
}

func newConverter() *converter {
	return &converter{
		accounts: map[*Account]*object.Object{},
		users:    map[*User]*object.Object{},
	}
}

func (c *converter) account(a *Account) *object.Object {
	if a == nil {
		return nil
	}

	if o, ok := c.accounts[a]; ok {
		return o
	}

	o := object.New(AccountType)
	c.accounts[a] = o

	setString(o, "Id", a.Id)
	setString(o, "Name", a.Name)
	setString(o, "AccountContactName", a.AccountContactName)

	for i := range a.Users {
		o.AddChild("Users", c.user(&a.Users[i]))
	}

	return o
}

func (c *converter) user(u *User) *object.Object {
	if u == nil {
		return nil
	}

	if o, ok := c.users[u]; ok {
		return o
	}

	o := object.New(UserType)
	c.users[u] = o

	setString(o, "Id", u.Id)

	if !u.CreatedDate.IsZero() {
		o.Set("CreatedDate", u.CreatedDate)
	}

	setString(o, "FullName", u.FullName)
	setString(o, "Street", u.Street)
	setString(o, "City", u.City)
	setString(o, "State", u.State)
	setString(o, "PostalCode", u.PostalCode)

	if u.EmailVerified != nil {
		o.Set("EmailVerified", *u.EmailVerified)
	}

	setString(o, "Status", u.Status)
	o.Set("Account", c.account(u.Account))

	return o
}

func setString(o *object.Object, field, v string) {
	if v != "" {
		o.Set(field, v)
	}
}

// AccountFromObject converts a hydrated Account object.
func AccountFromObject(o *object.Object) (*Account, error) {
	if err := expectType(o, AccountType); err != nil {
		return nil, err
	}

	var (
		a   Account
		err error
	)

	if a.Id, err = stringField(o, "Id"); err != nil {
		return nil, err
	}

	if a.Name, err = stringField(o, "Name"); err != nil {
		return nil, err
	}

	if a.AccountContactName, err = stringField(o, "AccountContactName"); err != nil {
		return nil, err
	}

	children, _ := o.Children("Users")
	for _, child := range children {
		u, err := UserFromObject(child)
		if err != nil {
			return nil, fmt.Errorf("Users: %w", err)
		}

		a.Users = append(a.Users, *u)
	}

	return &a, nil
}

// UserFromObject converts a hydrated User object. CreatedDate accepts a
// time.Time or a string in RFC 3339 or the API's offset format.
func UserFromObject(o *object.Object) (*User, error) {
	if err := expectType(o, UserType); err != nil {
		return nil, err
	}

	var u User

	strs := []struct {
		field string
		dst   *string
	}{
		{"Id", &u.Id},
		{"FullName", &u.FullName},
		{"Street", &u.Street},
		{"City", &u.City},
		{"State", &u.State},
		{"PostalCode", &u.PostalCode},
		{"Status", &u.Status},
	}

	for _, s := range strs {
		v, err := stringField(o, s.field)
		if err != nil {
			return nil, err
		}

		*s.dst = v
	}

	created, err := timeField(o, "CreatedDate")
	if err != nil {
		return nil, err
	}

	u.CreatedDate = created

	if v, ok := o.Get("EmailVerified"); ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("User.EmailVerified: expected bool, got %T", v)
		}

		u.EmailVerified = &b
	}

	if p, ok := o.Parent("Account"); ok {
		a, err := AccountFromObject(p)
		if err != nil {
			return nil, fmt.Errorf("Account: %w", err)
		}

		u.Account = a
	}

	return &u, nil
}

func expectType(o *object.Object, typeName string) error {
	if o == nil {
		return fmt.Errorf("nil %s object", typeName)
	}

	if o.Type() != typeName {
		return fmt.Errorf("expected %s object, got %s", typeName, o.Type())
	}

	return nil
}

func stringField(o *object.Object, field string) (string, error) {
	v, ok := o.Get(field)
	if !ok {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s.%s: expected string, got %T", o.Type(), field, v)
	}

	return s, nil
}

func timeField(o *object.Object, field string) (time.Time, error) {
	v, ok := o.Get(field)
	if !ok {
		return time.Time{}, nil
	}

	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		for _, layout := range []string{time.RFC3339Nano, schema.DateTimeLayout} {
			if t, err := time.Parse(layout, tv); err == nil {
				return t, nil
			}
		}

		return time.Time{}, fmt.Errorf("%s.%s: unrecognized datetime %q", o.Type(), field, tv)
	default:
		return time.Time{}, fmt.Errorf("%s.%s: expected datetime, got %T", o.Type(), field, v)
	}
}
