package broken

// Ticket has one field per extraction error.
//
//sf:object Ticket__c
type Ticket struct {
	Id       string `sf:"TicketId"`
	Subject  string `sf:"Subject__c"`
	Priority int    `sf:""`
	Owner    Person `sf:"Owner__r,paren"`
	Comments Note   `sf:"Comments__r,child"`
	Watchers []Note `sf:"Watchers__r,child"`
	Queue    string `sf:"Queue__r,parent"`
	Internal string `sf:"-"`
}

// Person is mapped with its type name as external name.
//
//sf:object
type Person struct {
	Email string `sf:"Email"`
}

// Note carries no directive.
type Note struct {
	Body string `sf:"Body__c"`
}
