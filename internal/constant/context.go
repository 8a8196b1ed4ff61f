package constant

// Context keys for fiber ctx.Locals.
const (
	ContextKeyRequestID = "requestid"
)

const RequestIDHeader = "X-Votemap-Request-ID"
