package workers

import (
	"context"
	"fmt"

	"github.com/1F47E/go-oledreel/internal/job"
	"github.com/1F47E/go-oledreel/internal/logger"
	"github.com/1F47E/go-oledreel/internal/mono"
)

var log = logger.Log

type Worker struct {
	ctx       context.Context
	width     int
	height    int
	threshold int
}

func NewWorker(ctx context.Context, width, height, threshold int) *Worker {
	return &Worker{
		ctx:       ctx,
		width:     width,
		height:    height,
		threshold: threshold,
	}
}

// WorkerPack quantizes and packs rasterized RGBA frames. Results go to the
// per-frame channel matching the job index, so the caller reads them back
// in timestamp order no matter which worker finished first.
func (w *Worker) WorkerPack(id int, jobs <-chan job.Frame, resChs []chan job.FrameRes) {
	name := fmt.Sprintf("WorkerPack #%d", id)
	log.Debugf("%s started\n", name)
	defer log.Debugf("%s finished\n", name)

	for {
		select {
		case <-w.ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			log.Debugf("%s got job %s\n", name, j.Print())
			m := mono.Quantize(j.RGBA, w.width, w.height, w.threshold)
			p := mono.Pack(m, w.width, w.height)
			resChs[j.Idx] <- job.FrameRes{Mono: m, Packed: p}
		}
	}
}
