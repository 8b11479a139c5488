package ai

// System prompts for the assistant personas. Several near-identical drafts
// of the chat persona existed historically; this is the canonical one, and
// callers treat it as data so variants stay configuration, not code.
const (
	// PersonaChat fronts the conversational /chat endpoints.
	PersonaChat = "You are CallMate AI, a friendly customer-support agent. Keep responses concise and helpful."

	// PersonaSuggest fronts the agent-assist suggestion endpoint.
	PersonaSuggest = "You are CallMate AI, a helpful, concise voice assistant for customer support."
)
