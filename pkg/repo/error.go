package repo

// InvalidInputError is returned when a request carries a value the domain
// rejects outright: an empty vector, or an empty required string field.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
