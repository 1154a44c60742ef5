package controller

// Messages holds the user-facing texts shown by the controller
type Messages struct {
	// Validation is signalled when the submitted ingredient is blank
	Validation string

	// Loading is the hidden label of the loading indicator
	Loading string

	// NoResults is shown when the API reports no matches
	NoResults string

	// GenericError is shown for every transport or decode failure
	GenericError string
}

// DefaultMessages returns the built-in English texts
func DefaultMessages() Messages {
	return Messages{
		Validation:   "Please enter an ingredient to search.",
		Loading:      "Loading...",
		NoResults:    "Sorry, no recipes were found with that ingredient. Try another one (e.g. chicken, beef, potato).",
		GenericError: "There was an error connecting to the server. Please try again later.",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.Validation == "" {
		m.Validation = d.Validation
	}
	if m.Loading == "" {
		m.Loading = d.Loading
	}
	if m.NoResults == "" {
		m.NoResults = d.NoResults
	}
	if m.GenericError == "" {
		m.GenericError = d.GenericError
	}
	return m
}
