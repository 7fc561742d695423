package turntaking

import "iter"

// TranscriptEvent is one upstream transcript fragment, as produced by a
// transcription pipeline the host runs itself.
type TranscriptEvent struct {
	Transcript string
	IsFinal    bool
}

// TapTranscripts feeds a host-owned transcript stream through the
// controller without consuming it. Each fragment is posted to the inbound
// queue before being yielded onward, so by the time a downstream consumer
// sees a fragment the controller has already been told about it.
//
// This is the integration point for hosts that already have a transcription
// pipeline and only want turn arbitration layered on top of it.
func (c *TurnController) TapTranscripts(stream iter.Seq[TranscriptEvent]) iter.Seq[TranscriptEvent] {
	return func(yield func(TranscriptEvent) bool) {
		for event := range stream {
			c.OnTranscriptFragment(event.Transcript, event.IsFinal)
			if !yield(event) {
				return
			}
		}
	}
}
