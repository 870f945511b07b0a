package dto

import "github.com/uktrade/help-desk-api/internal/domain"

// UploadResponse is the Zendesk upload envelope. The token is what clients
// attach to a later ticket or comment.
type UploadResponse struct {
	Upload UploadView `json:"upload"`
}

// UploadView describes a stored upload.
type UploadView struct {
	Token      string          `json:"token"`
	Attachment *AttachmentView `json:"attachment,omitempty"`
}

// NewUploadView projects a canonical upload.
func NewUploadView(upload *domain.Upload) UploadView {
	view := UploadView{Token: upload.Token}
	if upload.HaloID != nil {
		view.Attachment = &AttachmentView{
			ID:       upload.HaloID,
			FileName: upload.Filename,
			IsImage:  upload.IsImage,
		}
	}
	return view
}
