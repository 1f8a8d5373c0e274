package conv

import "github.com/cwbudde/algo-sigproc/dsp/core"

// StreamingOverlapAdd convolves an unbounded input stream with a fixed kernel,
// block by block. Each Process call emits exactly as many samples as it
// consumes; the trailing kernelLen-1 samples of each block convolution are
// carried over and added to the next call's output. Flush drains the carried
// tail when the stream ends.
//
// Not safe for concurrent use.
type StreamingOverlapAdd struct {
	oa      *OverlapAdd
	overlap []float64
}

// NewStreamingOverlapAdd creates a streaming convolver for the given kernel.
// blockSize tunes the internal transform size; pass 0 for an automatic
// choice.
func NewStreamingOverlapAdd(kernel []float64, blockSize int) (*StreamingOverlapAdd, error) {
	oa, err := NewOverlapAdd(kernel, blockSize)
	if err != nil {
		return nil, err
	}

	return &StreamingOverlapAdd{
		oa:      oa,
		overlap: make([]float64, oa.kernelLen-1),
	}, nil
}

// Process convolves the next chunk of the stream, returning len(input)
// output samples.
func (s *StreamingOverlapAdd) Process(input []float64) ([]float64, error) {
	full, err := s.oa.Process(input)
	if err != nil {
		return nil, err
	}

	// full has len(input)+kernelLen-1 samples; fold in the carried tail,
	// emit the first len(input), carry the rest.
	for i, v := range s.overlap {
		full[i] += v
	}

	out := full[:len(input)]
	copy(s.overlap, full[len(input):])
	return out, nil
}

// Flush returns the carried convolution tail and resets it. Call once after
// the final Process to obtain the last kernelLen-1 samples of the full
// convolution.
func (s *StreamingOverlapAdd) Flush() []float64 {
	out := make([]float64, len(s.overlap))
	copy(out, s.overlap)
	core.Zero(s.overlap)
	return out
}

// Reset discards all carried state.
func (s *StreamingOverlapAdd) Reset() {
	core.Zero(s.overlap)
}
