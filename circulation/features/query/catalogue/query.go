package catalogue

const (
	queryType = "SearchCatalogue"
)

// Query selects titles by name and author.
type Query struct {
	Name   string
	Author string
}

// BuildQuery creates a new Query.
func BuildQuery(name string, author string) Query {
	return Query{Name: name, Author: author}
}

// QueryType returns the type identifier for this query, used for logging.
func (q Query) QueryType() string {
	return queryType
}
