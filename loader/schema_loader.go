package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ridoystarlord/prismaviz/visualise"
)

// ErrUnreadableInput wraps every failure to read schema text.
var ErrUnreadableInput = errors.New("unreadable schema input")

// MaxSchemaSize bounds how much text is read from a single schema source.
const MaxSchemaSize = 8 << 20

// LoadSchemaFile reads the whole schema file at path.
func LoadSchemaFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	defer f.Close()
	return LoadSchema(f)
}

// LoadSchema reads schema text from r, failing on inputs over MaxSchemaSize.
func LoadSchema(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSchemaSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	if len(data) > MaxSchemaSize {
		return "", fmt.Errorf("%w: schema is larger than %d bytes", ErrUnreadableInput, MaxSchemaSize)
	}
	return string(data), nil
}

// LoadModelsFromFile reads and extracts the schema at path. Parse errors are
// returned as *visualise.UnparsableSchemaError next to the partial result.
func LoadModelsFromFile(path string) (*visualise.Result, error) {
	text, err := LoadSchemaFile(path)
	if err != nil {
		return nil, err
	}
	return visualise.Extract(text)
}
