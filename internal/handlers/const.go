package handlers

const (
	ErrMsgPasswordRequired    = "Password is required"
	ErrMsgServerConfiguration = "Server configuration error"
	ErrMsgTooManyAttempts     = "Too many login attempts"
	ErrMsgInvalidPassword     = "Invalid password"
	ErrMsgPhotoNotFound       = "Photo not found"
	ErrMsgUploadFieldsMissing = "File, title, and date are required"
	ErrMsgDuplicateTitle      = "A photo with this title already exists"
	ErrMsgInvalidDate         = "Invalid date"
	ErrMsgInvalidTitle        = "Title must contain letters or numbers"
	ErrMsgUploadFailed        = "Failed to upload photo"
	ErrMsgUploadTooLarge      = "Upload too large"
	ErrMsgInvalidRequest      = "Invalid request body"
)

const (
	defaultImageExtension = "jpg"
	thumbnailSuffix       = "-thumb.jpg"
	thumbnailContentType  = "image/jpeg"

	// multipartMemory is how much of a multipart upload is buffered in memory before spilling to disk.
	multipartMemory  = 32 << 20
	maxJSONBodyBytes = 1 << 20

	defaultAuditLimit = 50
	maxAuditLimit     = 500
)
