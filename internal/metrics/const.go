package metrics

const Namespace = "photo_portfolio"

const (
	LoginResultSuccess       = "success"
	LoginResultInvalid       = "invalid_password"
	LoginResultThrottled     = "throttled"
	LoginResultMissing       = "missing_password"
	LoginResultNotConfigured = "not_configured"
)

const (
	BlobOperationPut    = "put"
	BlobOperationDelete = "delete"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)
