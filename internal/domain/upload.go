package domain

// Upload describes an attachment accepted for a later ticket or comment.
type Upload struct {
	Token       string
	Filename    string
	ContentType string
	Size        int
	IsImage     bool
	HaloID      *int
}

// Attachment is Halo's stored-file record folded into ticket responses.
type Attachment struct {
	ID       *int
	Filename string
	IsImage  bool
}
