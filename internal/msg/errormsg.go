package msg

// cmd convert
const (
	// MissingByteCount indicates no byte count argument
	MissingByteCount = "no byte count provided"
	// InvalidByteCount indicates the argument is not an integer
	InvalidByteCount = "%s: not a valid byte count"
	// InvalidUnit indicates the unit is not part of the catalog
	InvalidUnit = "%s: no such unit"
	// ConflictingUnitFlags is thrown when an explicit unit is combined with a family switch.
	ConflictingUnitFlags = "--unit cannot be combined with --binary"
	// UnknownOutputFormat indicates the requested output format is not supported
	UnknownOutputFormat = "unknown output format"
)

// prefs settings
const (
	// InvalidFamily indicates that the configured unit family has no effect on the rendering
	InvalidFamily = "'%s' is not a valid unit family. Must be one of [%s]"
	// InvalidPrefs indicates the preferences are not usable as provided
	InvalidPrefs = "the provided preferences appear to be invalid and will NOT be saved"
	// NoTTY indicates interactive configuration was requested without a terminal
	NoTTY = "no interactive terminal detected, pass the preferences via flags instead"
)
