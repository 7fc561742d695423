package speechtotext

import "github.com/koscakluka/turngate-core/core/audio"

type TranscriptionOptions struct {
	InterimTranscriptionCallback func(transcript string)
	TranscriptionCallback        func(transcript string)
	UtteranceCallback            func(transcript string)

	SpeechStartedCallback func()
	SpeechEndedCallback   func()

	EncodingInfo audio.EncodingInfo
}

type TranscriptionOption func(*TranscriptionOptions)

// WithTranscriptionCallback registers a callback for finalized transcript
// fragments. Fragments delivered here will never be revised upstream.
func WithTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.TranscriptionCallback = callback
	}
}

// WithUtteranceCallback registers a callback for the full accumulated
// transcript of an utterance, delivered once speech ends.
func WithUtteranceCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.UtteranceCallback = callback
	}
}

// WithInterimTranscriptionCallback registers a callback for interim
// transcripts, which may still be revised upstream.
func WithInterimTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.InterimTranscriptionCallback = callback
	}
}

func WithSpeechStartedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechStartedCallback = callback
	}
}

func WithSpeechEndedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechEndedCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.EncodingInfo = encodingInfo
	}
}
