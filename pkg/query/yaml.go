package query

// yamlQuery is the intermediate struct for one entry of a query file.
type yamlQuery struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description,omitempty"`
}

// yamlQueriesFile is the top-level structure of a query YAML file: a
// "queries" array.
type yamlQueriesFile struct {
	Queries []yamlQuery `yaml:"queries"`
}
