package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/registerface/internal/client/client"
	"github.com/dmitrijs2005/registerface/internal/netx"
)

// Transfer seams, replaced in tests.
var (
	uploadToURL     = netx.UploadToPresignedURL
	downloadFromURL = netx.DownloadFromPresignedURL
)

// SnapshotService moves face snapshot JPEGs between the CLI and object
// storage. The bytes go straight to the presigned URLs, the server only
// hands the URLs out.
type SnapshotService interface {
	Upload(ctx context.Context, kind string, jpeg []byte) (string, error)
	Download(ctx context.Context, kind string) ([]byte, error)
}

type snapshotService struct {
	client client.Client
}

func NewSnapshotService(c client.Client) SnapshotService {
	return &snapshotService{client: c}
}

// Upload requests a URL, PUTs the JPEG and confirms it. It returns the
// snapshot id.
func (s *snapshotService) Upload(ctx context.Context, kind string, jpeg []byte) (string, error) {
	up, err := s.client.RequestSnapshotUpload(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("request upload error: %w", err)
	}

	if err := uploadToURL(ctx, up.URL, jpeg, netx.ContentTypeJPEG); err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}

	if err := s.client.ConfirmSnapshotUpload(ctx, up.ID); err != nil {
		return "", fmt.Errorf("confirm upload error: %w", err)
	}
	return up.ID, nil
}

// Download fetches the newest uploaded snapshot of kind.
func (s *snapshotService) Download(ctx context.Context, kind string) ([]byte, error) {
	url, err := s.client.SnapshotURL(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("snapshot url error: %w", err)
	}
	b, err := downloadFromURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download error: %w", err)
	}
	return b, nil
}
