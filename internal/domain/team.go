package domain

// Team mirrors a Zendesk group. Created directly from source payloads.
type Team struct {
	ID   *int
	Name string
}

// Agent is a help-desk operator.
type Agent struct {
	ID    *int
	Name  string
	Email string
}
