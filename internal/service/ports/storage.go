package ports

import "context"

type ImageStore interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}
