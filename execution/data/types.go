package data

// Types of an evaluation result as a string.
type Types string

// The valid result types as constants, limited for our use.
const (
	FLOAT Types = "float"
	ERROR Types = "error"
	NONE  Types = "none"
)
