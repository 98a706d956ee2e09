package feed

import (
	"context"
)

type Client interface {
	Fetch(ctx context.Context) ([]RawEvent, error)
}
