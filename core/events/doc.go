// Package events defines the typed turn-taking event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - agent_state.*
//   - backoff.*
//   - user_input.*
//   - agent_speech.*
//   - turn_state.*
//
// Semantics used across the package:
//
//   - Started/Ended: lifecycle boundaries of a timed or streamed phase.
//   - Transcribed: text derived from user audio; IsFinal marks fragments
//     that will never be revised upstream.
//   - Committed: the pending user transcript was finalized as a turn and
//     handed off to response generation.
//
// agent_state events
//
//   - AgentStateChanged (agent_state.changed): emitted on every controller
//     state transition, in transition order, before any other side effect
//     of that transition becomes observable.
//
// backoff events
//
//   - BackoffStarted (backoff.started): a post-interruption silence window
//     opened; the agent may not start speech until the matching end event.
//   - BackoffEnded (backoff.ended): the window closed. Start and end events
//     come in matched pairs carrying the same BackoffSeconds; a restarted
//     window never emits a second start.
//
// user_input events
//
//   - UserSpeechStarted (user_input.speech_started): speech activity began.
//   - UserSpeechEnded (user_input.speech_ended): speech activity ended.
//   - UserInputTranscribed (user_input.transcribed): pass-through of an
//     upstream speech-to-text fragment; only IsFinal fragments feed the
//     pending transcript.
//
// agent_speech events
//
//   - AgentSpeechStarted (agent_speech.started): playback of a generated
//     response began.
//   - AgentSpeechEnded (agent_speech.ended): playback finished.
//
// turn_state events
//
//   - UserTurnCommitted (turn_state.committed): the pending transcript was
//     committed as a complete turn.
//   - PendingTurnDiscarded (turn_state.discarded): the pending transcript
//     was dropped without committing.
package events
