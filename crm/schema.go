package crm

import (
	"record-mapper/schema"
)

// Domain type names.
const (
	AccountType = "Account"
	UserType    = "User"
)

// AccountDef maps Account to the external Account type.
var AccountDef = schema.TypeDef{
	Name:     AccountType,
	External: "Account",
	Fields: []schema.FieldDef{
		{Name: "Name", Alias: "Name", Kind: schema.KindString},
		{Name: "AccountContactName", Alias: "Account_Contact_Name__c", Kind: schema.KindString},
		{Name: "Users", Alias: "Contacts", Role: schema.RoleChild, Target: UserType},
	},
}

// UserDef maps User to the external Contact type.
var UserDef = schema.TypeDef{
	Name:     UserType,
	External: "Contact",
	Fields: []schema.FieldDef{
		{Name: "CreatedDate", Alias: "CreatedDate", Kind: schema.KindDateTime},
		{Name: "FullName", Alias: "Full_Name__c", Kind: schema.KindString},
		{Name: "Street", Alias: "MailingStreet", Kind: schema.KindString},
		{Name: "City", Alias: "MailingCity", Kind: schema.KindString},
		{Name: "State", Alias: "MailingState", Kind: schema.KindString},
		{Name: "PostalCode", Alias: "MailingPostalCode", Kind: schema.KindString},
		{Name: "EmailVerified", Alias: "Email_Verified__c", Kind: schema.KindBool},
		{Name: "Status", Alias: "Status__c", Kind: schema.KindString},
		{Name: "Account", Alias: "Account", Role: schema.RoleParent, Target: AccountType},
	},
}

// Register declares the CRM types into reg.
func Register(reg *schema.Registry) error {
	return reg.Declare(AccountDef, UserDef)
}

// NewRegistry returns a frozen registry holding the CRM types.
func NewRegistry() *schema.Registry {
	reg := schema.NewRegistry()
	reg.MustDeclare(AccountDef, UserDef)
	reg.Freeze()

	return reg
}
