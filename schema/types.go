package schema

// Implementation identifies a protocol peer.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities advertises what the connecting client supports.
type ClientCapabilities struct {
	Experimental map[string]map[string]interface{} `json:"experimental,omitempty"`
}

// ServerCapabilities advertises what this server supports.
type ServerCapabilities struct {
	Tools     *ServerCapabilitiesTools     `json:"tools,omitempty"`
	Prompts   *ServerCapabilitiesPrompts   `json:"prompts,omitempty"`
	Resources *ServerCapabilitiesResources `json:"resources,omitempty"`
}

type ServerCapabilitiesTools struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ServerCapabilitiesPrompts struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ServerCapabilitiesResources struct {
	Subscribe   *bool `json:"subscribe,omitempty"`
	ListChanged *bool `json:"listChanged,omitempty"`
}

// InitializeRequestParams holds the initialize call parameters.
type InitializeRequestParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// InitializeResult answers the initialize call with identity and capabilities.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    *string            `json:"instructions,omitempty"`
}

// PingResult is an empty acknowledgment.
type PingResult struct{}

// ListToolsResult carries the full tool catalog.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// Prompt is a named prompt template; the bridge serves none.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ListPromptsResult struct {
	Prompts []Prompt `json:"prompts"`
}

// Resource is an addressable content item; the bridge serves none.
type Resource struct {
	Name     string  `json:"name"`
	Uri      string  `json:"uri"`
	MimeType *string `json:"mimeType,omitempty"`
}

type ListResourcesResult struct {
	Resources []Resource `json:"resources"`
}
