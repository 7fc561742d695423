package turntaking

// Interaction presets tuned per deployment domain. Each returns plain
// controller options, so a host can start from a preset and override
// individual knobs by appending further options.

// GamingPreset disables backoff entirely: twitch interactions want the
// agent to yield and re-engage with no artificial silence.
func GamingPreset() []ControllerOption {
	return []ControllerOption{
		WithBackoffSeconds(0),
		WithBackoffRestartPolicy(RestartPolicyRestart),
	}
}

// AssistantPreset is the general-purpose default: a short window that
// restarts while the user keeps talking.
func AssistantPreset() []ControllerOption {
	return []ControllerOption{
		WithBackoffSeconds(1.0),
		WithBackoffRestartPolicy(RestartPolicyRestart),
	}
}

// HealthcarePreset favors deliberate pacing: a long window whose expiry is
// fixed at the first interruption, so a hesitant speaker cannot push the
// agent's re-entry out indefinitely.
func HealthcarePreset() []ControllerOption {
	return []ControllerOption{
		WithBackoffSeconds(2.5),
		WithBackoffRestartPolicy(RestartPolicyIgnore),
	}
}

// SupportPreset sits between assistant and healthcare pacing.
func SupportPreset() []ControllerOption {
	return []ControllerOption{
		WithBackoffSeconds(1.5),
		WithBackoffRestartPolicy(RestartPolicyRestart),
	}
}
