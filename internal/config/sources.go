package config

// TaxonomyConfig configures the bundled keyword resource.
type TaxonomyConfig struct {
	// ResourcePath points at a JSON file shaped {"domains": {...}, "roles": {...}}.
	ResourcePath string `yaml:"resource_path"`
}

// KnowledgeConfig configures the knowledge-base document.
type KnowledgeConfig struct {
	DocumentPath string `yaml:"document_path"`
}
