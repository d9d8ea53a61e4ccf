package tools

import "fmt"

// SpawnError reports that an external program could not be started,
// typically because it is missing or not executable.
type SpawnError struct {
	Exe string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("não foi possível executar %s: %v", e.Exe, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
