package install

import "fmt"

// DownloadError reports a failed release download: either a transport
// failure (Err set) or a non-success HTTP status.
type DownloadError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("falha ao baixar %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("falha ao baixar %s: HTTP %s", e.URL, e.Status)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ExtractionError reports a malformed, unsafe or incomplete release archive.
type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("falha ao extrair %s: %v", e.Archive, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
