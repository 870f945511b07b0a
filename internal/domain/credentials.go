package domain

import "time"

// HelpDeskCreds is one tenant's credential row. The Zendesk token arrives
// hashed; the Halo pair scopes a per-request backend client.
type HelpDeskCreds struct {
	ID               int
	ZendeskEmail     string
	ZendeskTokenHash string
	ZendeskSubdomain string
	HaloClientID     string
	HaloClientSecret string
	LastModified     time.Time
}
