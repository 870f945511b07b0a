package domain

// Comment is a ticket comment. Public comments are visible to the end user;
// Halo stores the same bit inverted as "hidden from user".
type Comment struct {
	ID       *int
	TicketID *int
	Body     string
	Public   bool
	AuthorID *int
}
