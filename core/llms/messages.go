package llms

// Response is a single response from an LLM.
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// Turn is a single prior exchange supplied as conversation history.
type Turn struct {
	Role    TurnRole
	Content string
}

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// ToolCall is a function call requested by the model. The caller decides
// whether and how to execute it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Tool describes a function the model may call.
type Tool struct {
	Type     string
	Function ToolFunction
}

type ToolFunction struct {
	Name        string
	Description string
	Parameters  map[string]any
}
