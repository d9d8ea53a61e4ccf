package install

import (
	"context"
	"fmt"
	"io"
	"os"
)

// download streams url into dest, truncating any previous file.
func (i *Installer) download(ctx context.Context, url, dest string) error {
	resp, err := i.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	body := resp.RawBody()
	if body == nil {
		return &DownloadError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}
	defer body.Close()

	if !resp.IsSuccess() {
		return &DownloadError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("criar %s: %w", dest, err)
	}

	var src io.Reader = body
	var bar *progressWriter
	if i.Progress != nil && resp.RawResponse.ContentLength > 0 {
		bar = newProgressWriter(i.Progress, resp.RawResponse.ContentLength)
		src = io.TeeReader(body, bar)
	}

	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()
	if bar != nil {
		bar.Done()
	}
	if copyErr != nil {
		return &DownloadError{URL: url, Err: copyErr}
	}
	if closeErr != nil {
		return fmt.Errorf("gravar %s: %w", dest, closeErr)
	}
	i.log.Debug("release downloaded", "bytes", n)
	return nil
}
