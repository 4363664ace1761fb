// Package klatt implements the Klatt-style formant synthesis DSP
// graph: glottal-flow source, aspiration/frication noise, cascade and
// parallel resonator banks, high-shelf brightening, and a DC blocker,
// driven sample-by-sample from a frame queue.
package klatt

import "github.com/gophone/speechplayer/phoneme"

// Frame is the DSP engine's input record: the same numeric parameter
// block a phoneme.Descriptor carries, so a planned phoneme's Params can
// be enqueued directly.
type Frame = phoneme.Params

const SampleRate = 16000
