package response

// Message is the error body every endpoint emits; success bodies are
// endpoint-specific.
type Message struct {
	Msg string `json:"msg"`
}

const (
	MessageBadRequest      = "bad request"
	MessageUnauthorized    = "authentication invalid"
	MessageNotFound        = "not found"
	MessageTooManyRequests = "Too many requests from this IP, please try again after 15 minutes"
	MessageInternal        = "Something went wrong, please try again later"
	MessageDemoReadOnly    = "Demo user is read-only!"
)
