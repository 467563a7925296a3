package crm

import (
	"time"
)

// Account is a customer organization.
//
//sf:object Account
type Account struct {
	Id                 string
	Name               string `sf:"Name"`
	AccountContactName string `sf:"Account_Contact_Name__c"`
	Users              []User `sf:"Contacts,child"`
}

// User is a person at an Account, stored remotely as a Contact.
//
//sf:object Contact
type User struct {
	Id            string
	CreatedDate   time.Time `sf:"CreatedDate"`
	FullName      string    `sf:"Full_Name__c"`
	Street        string    `sf:"MailingStreet"`
	City          string    `sf:"MailingCity"`
	State         string    `sf:"MailingState"`
	PostalCode    string    `sf:"MailingPostalCode"`
	EmailVerified *bool     `sf:"Email_Verified__c"`
	Status        string    `sf:"Status__c"`
	Account       *Account  `sf:"Account,parent"`
}

// NewUser creates a User with every scalar field set.
func NewUser(id string, createdDate time.Time, fullName, street, city, state, postalCode string, emailVerified bool, status string) User {
	return User{
		Id:            id,
		CreatedDate:   createdDate,
		FullName:      fullName,
		Street:        street,
		City:          city,
		State:         state,
		PostalCode:    postalCode,
		EmailVerified: &emailVerified,
		Status:        status,
	}
}

// NewAccount creates an Account owning users.
func NewAccount(id, name, accountContactName string, users ...User) Account {
	return Account{
		Id:                 id,
		Name:               name,
		AccountContactName: accountContactName,
		Users:              users,
	}
}
