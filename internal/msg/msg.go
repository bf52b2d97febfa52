package msg

// SetupMessage explains what the configure command persists and where.
const SetupMessage = `Pick the defaults that sizectl applies when a conversion does not
specify them explicitly. The choices are stored in ~/.sizectl/prefs.yml
and can be overridden per invocation via flags.`

// UnitHint lists the ways a unit can be addressed on the command line.
const UnitHint = `Units are accepted by symbol ("kB", "KiB") or by name ("kilobyte",
"kibibyte"), regardless of case. Run 'sizectl units' to see the catalog.`
