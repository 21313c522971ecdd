package driven

// GuideStore provides access to reference guide texts served to agent
// hosts as MCP resources. Implementations may load guides from
// user-editable files or fall back to embedded defaults.
type GuideStore interface {
	// Load returns the guide text for the given name.
	Load(name string) (string, error)

	// Reload clears any cached guides, forcing fresh loads on next access.
	Reload()
}

// Well-known guide names used throughout the application.
const (
	// GuideQuerySyntax documents the boolean query syntax accepted by the
	// remote API (knowledge://query-syntax).
	GuideQuerySyntax = "query_syntax"

	// GuideWorkflow documents the recommended tool/prompt workflow
	// (guide://workflow).
	GuideWorkflow = "workflow"
)
