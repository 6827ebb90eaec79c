package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

// File access seams for tests.
var (
	readFile  = os.ReadFile
	writeFile = os.WriteFile
)

// SetPhoto uploads the file at path as the caller's profile photo,
// replacing any previous one.
func (a *App) SetPhoto(ctx context.Context, path string) error {
	data, err := readFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.UploadPhoto(ctx, &pb.UploadPhotoRequest{Filename: filepath.Base(path), Data: data})
	if err != nil {
		return a.fail("Upload", err)
	}

	fmt.Fprintf(a.out, "Uploaded %d bytes as %s\n", len(data), resp.GetRef())
	return nil
}

// GetPhoto downloads the caller's profile photo into path. With an empty
// path the stored file name is used in the current directory.
func (a *App) GetPhoto(ctx context.Context, path string) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.api.DownloadPhoto(ctx, &pb.DownloadPhotoRequest{})
	if err != nil {
		return a.fail("Download", err)
	}

	if path == "" {
		path = filepath.Base(resp.GetLabel())
	}
	if err := writeFile(path, resp.GetData(), 0o600); err != nil {
		fmt.Fprintf(a.out, "Cannot write %s: %v\n", path, err)
		return err
	}

	fmt.Fprintf(a.out, "Saved %s (%s, %d bytes)\n", path, resp.GetContentType(), len(resp.GetData()))
	return nil
}
