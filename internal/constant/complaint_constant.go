package constant

// Fixed user-visible strings. These are authored in English and localized at
// runtime by the translator.
const (
	// RejectionMessage is returned when the domain gate turns a query away.
	RejectionMessage = "I'm sorry, but I can only assist with **telecom-related** complaints " +
		"(mobile, broadband, DTH, landline, enterprise telecom services). " +
		"Your query doesn't appear to be telecom-related. Please try again with a telecom issue."

	// EmptyQueryMessage is returned for a blank complaint, before any
	// reasoning call is made.
	EmptyQueryMessage = "Please enter your complaint/query."

	// InvalidSectorMessage is returned for an unknown sector key.
	InvalidSectorMessage = "Invalid sector"
)

// DefaultSectorName is the generic domain label used when a sector key does
// not resolve against the taxonomy.
const DefaultSectorName = "Telecom"

// DefaultLanguage is assumed when the request carries no language.
const DefaultLanguage = "English"
