// Package jsonflat flattens a JSON document into lines of the form
//
//	<path>\t: <value>
//
// one for each node of the document, so that line-oriented tools like grep,
// cut or awk can extract fields from JSON without a JSON library.
//
// A path is made of the object keys and array indices leading to the node,
// joined with '.'.  The root of the document has the empty path.  The value
// of a scalar is its literal text with the surrounding quotes removed.  The
// value of an array or object is rebuilt from the values of its children, so
// it is not valid JSON when it contains strings.  For example
//
//	{"name": "Alice", "tags": ["a", "b"]}
//
// is flattened into
//
//	name	: Alice
//	tags.0	: a
//	tags.1	: b
//	tags	: [a,b]
//		: {"name":Alice,"tags":[a,b]}
//
// Children are always printed before their container.  Which lines are
// printed can be tuned with Options.
//
// The package is organized into:
//
// - token: splits JSON text into tokens
// - jsonflat (this package): parses the tokens and emits the lines
//
// The CLI utility is in the directory cmd/jsonflat. You can install it with:
//
//	go install github.com/arnodel/jsonflat/cmd/jsonflat
package jsonflat
