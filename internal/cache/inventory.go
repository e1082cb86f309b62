package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	ObjectKeyPrefix  = "object:%d"
	ResolveKeyPrefix = "resolve:%s"
	ImageKeyPrefix   = "image:%d"
	CatalogsKey      = "catalogs"
)

const (
	ObjectTTL  = 30 * time.Minute
	ResolveTTL = 30 * time.Minute
	ImageTTL   = 10 * time.Minute
	CatalogTTL = time.Hour
)

func ObjectKey(objectID uint) string {
	return fmt.Sprintf(ObjectKeyPrefix, objectID)
}

// ResolveKey normalizes the resolver query so "M31" and "m31" share an entry.
func ResolveKey(query string) string {
	return fmt.Sprintf(ResolveKeyPrefix, strings.ToLower(strings.TrimSpace(query)))
}

func ImageKey(imageID uint) string {
	return fmt.Sprintf(ImageKeyPrefix, imageID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateImage(ctx context.Context, imageID uint) {
	Invalidate(ctx, ImageKey(imageID))
}

func InvalidateObject(ctx context.Context, objectID uint) {
	Invalidate(ctx, ObjectKey(objectID))
	InvalidateResolutions(ctx)
}

// InvalidateResolutions drops every cached resolver result. Object writes are
// rare (bulk import or admin edits), so a full sweep is acceptable.
func InvalidateResolutions(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "resolve:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
