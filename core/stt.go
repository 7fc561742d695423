package turntaking

import (
	"context"
	"fmt"
	"log"

	"github.com/koscakluka/turngate-core/core/speechtotext"
)

// speechToText wraps the optional transcription client so the controller
// can run with or without one. A controller without a bound client still
// accepts speech boundaries and transcript fragments through its public
// methods.
type speechToText struct {
	client SpeechToText
}

type speechToTextCallbacks struct {
	onSpeechStarted        func()
	onSpeechEnded          func()
	onInterimTranscription func(transcript string)
	onTranscription        func(transcript string)
}

func (s *speechToText) set(client SpeechToText) {
	s.client = client
}

func (s *speechToText) isConfigured() bool {
	return s.client != nil
}

func (s *speechToText) start(ctx context.Context, callbacks speechToTextCallbacks) error {
	if !s.isConfigured() {
		return nil
	}

	if err := s.client.Transcribe(ctx,
		speechtotext.WithSpeechStartedCallback(callbacks.onSpeechStarted),
		speechtotext.WithSpeechEndedCallback(callbacks.onSpeechEnded),
		speechtotext.WithInterimTranscriptionCallback(callbacks.onInterimTranscription),
		speechtotext.WithTranscriptionCallback(callbacks.onTranscription),
	); err != nil {
		return fmt.Errorf("failed to start transcription: %w", err)
	}

	return nil
}

func (s *speechToText) SendAudio(audio []byte) error {
	if !s.isConfigured() {
		return fmt.Errorf("no speech-to-text client configured")
	}

	return s.client.SendAudio(audio)
}

func (s *speechToText) Close(ctx context.Context) error {
	if !s.isConfigured() {
		return nil
	}

	switch client := s.client.(type) {
	case interface{ Close(context.Context) error }:
		return client.Close(ctx)
	case interface{ Close() error }:
		return client.Close()
	case interface{ Close() }:
		client.Close()
	default:
		log.Println("Warning: speech-to-text client does not support closing")
	}

	return nil
}
