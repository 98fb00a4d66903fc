package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ridoystarlord/prismaviz/psl"
)

var (
	ErrNoDatasource        = errors.New("schema has no datasource block")
	ErrUnsupportedProvider = errors.New("unsupported datasource provider")
)

// Datasource is the connection information of a `datasource` block.
type Datasource struct {
	Name     string
	Provider string
	URL      string
	// EnvVar is set when the url was written as env("NAME").
	EnvVar string
}

// DatasourceFromAST reads the first datasource block of a parsed schema.
// env("...") urls are resolved from the process environment, so .env files
// must be loaded first. schemaDir anchors relative sqlite paths.
func DatasourceFromAST(ast *psl.SchemaAst, schemaDir string) (*Datasource, error) {
	blocks := ast.Datasources()
	if len(blocks) == 0 {
		return nil, ErrNoDatasource
	}
	block := blocks[0]
	ds := &Datasource{Name: block.Name}

	provider, ok := block.Property("provider")
	if !ok || provider.Value.Kind != psl.StringValue {
		return nil, fmt.Errorf("datasource %q: provider must be a string", block.Name)
	}
	ds.Provider = provider.Value.Value

	url, ok := block.Property("url")
	if !ok {
		return nil, fmt.Errorf("datasource %q: missing url", block.Name)
	}
	switch url.Value.Kind {
	case psl.StringValue:
		ds.URL = url.Value.Value
	case psl.FunctionCall:
		if url.Value.Value != "env" || len(url.Value.Arguments) != 1 {
			return nil, fmt.Errorf("datasource %q: url must be a string or env(\"NAME\")", block.Name)
		}
		ds.EnvVar = url.Value.Arguments[0].ArgumentValue().Value
		value, set := os.LookupEnv(ds.EnvVar)
		if !set {
			return nil, fmt.Errorf("datasource %q: environment variable %s is not set", block.Name, ds.EnvVar)
		}
		ds.URL = value
	default:
		return nil, fmt.Errorf("datasource %q: url must be a string or env(\"NAME\")", block.Name)
	}

	if ds.Provider == "sqlite" {
		ds.URL = sqlitePath(ds.URL, schemaDir)
	}
	return ds, nil
}

func sqlitePath(url, schemaDir string) string {
	path := strings.TrimPrefix(strings.TrimPrefix(url, "file:"), "//")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if schemaDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(schemaDir, path)
	}
	return path
}

// Redacted returns the url with any password masked, for display.
func (d *Datasource) Redacted() string {
	if d.Provider == "sqlite" {
		return d.URL
	}
	scheme := strings.Index(d.URL, "://")
	at := strings.LastIndex(d.URL, "@")
	if scheme < 0 || at < scheme {
		return d.URL
	}
	creds := d.URL[scheme+3 : at]
	if colon := strings.IndexByte(creds, ':'); colon >= 0 {
		return d.URL[:scheme+3] + creds[:colon] + ":****" + d.URL[at:]
	}
	return d.URL
}
