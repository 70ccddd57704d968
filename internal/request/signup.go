package request

// SignupRequest carries the email verbatim; any value, including an empty one, is accepted
// as long as the email query parameter was sent.
type SignupRequest struct {
	ActivityName  string
	Email         string
	EmailProvided bool `validate:"required"`
}
