package job

import "fmt"

// quantize+pack work for one rasterized frame
type Frame struct {
	Idx  int
	RGBA []byte
}

// result from the packing worker, channel index = frame index
type FrameRes struct {
	Mono   []byte
	Packed []byte
}

func (j *Frame) Print() string {
	return fmt.Sprintf("Job: Idx: %d, RGBA len: %d", j.Idx, len(j.RGBA))
}
