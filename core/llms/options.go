package llms

type PromptOptions struct {
	// Instructions is the system prompt prepended to the conversation.
	Instructions string
	// History is supplied earliest first.
	History []Turn
	Tools   []Tool
}

type PromptOption func(*PromptOptions)

// WithSystemPrompt overrides the client's default system prompt for this
// call.
func WithSystemPrompt(instructions string) PromptOption {
	return func(o *PromptOptions) {
		o.Instructions = instructions
	}
}

// WithHistory supplies prior turns as conversation context, earliest first.
func WithHistory(turns ...Turn) PromptOption {
	return func(o *PromptOptions) {
		o.History = turns
	}
}

// WithTools exposes callable tools to the model. Tool calls are returned in
// the response, never executed by the client.
func WithTools(tools ...Tool) PromptOption {
	return func(o *PromptOptions) {
		o.Tools = tools
	}
}
