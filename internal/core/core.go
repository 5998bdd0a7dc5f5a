package core

import (
	"context"

	"github.com/1F47E/go-oledreel/internal/video"
)

// Core runs one video at a time through the sample → rasterize → quantize
// → pack pipeline. Frame extraction is strictly serial: there is a single
// decode handle and a single reusable drawing surface per run.
type Core struct {
	ctx  context.Context
	open func(ctx context.Context, path string) (FrameSource, error)
}

func NewCore(ctx context.Context) *Core {
	return &Core{
		ctx: ctx,
		open: func(ctx context.Context, path string) (FrameSource, error) {
			return video.Open(ctx, path)
		},
	}
}
