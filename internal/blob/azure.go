package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// Azure uploads media to one Azure Blob Storage container. Blobs are
// addressed by name; uploading the same name twice overwrites.
type Azure struct {
	client    *azblob.Client
	container string
}

func NewAzure(connString, container string) (*Azure, error) {
	if connString == "" || container == "" {
		return nil, fmt.Errorf("blob connection string and container are required")
	}
	client, err := azblob.NewClientFromConnectionString(connString, nil)
	if err != nil {
		return nil, fmt.Errorf("blob client: %w", err)
	}
	return &Azure{client: client, container: container}, nil
}

func (a *Azure) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if _, err := a.client.UploadBuffer(ctx, a.container, name, data, nil); err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	base := strings.TrimSuffix(a.client.URL(), "/")
	return fmt.Sprintf("%s/%s/%s", base, a.container, url.PathEscape(name)), nil
}
