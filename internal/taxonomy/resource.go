package taxonomy

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed defaults/taxonomy.json
var bundled embed.FS

// BundledResourceName is the path of the compiled-in keyword resource.
const BundledResourceName = "defaults/taxonomy.json"

// ResourceSource supplies the raw bytes of a keyword resource shaped
// {"domains": {"<name>": ["kw", ...]}, "roles": {"<name>": ["kw", ...]}}.
type ResourceSource interface {
	Name() string
	ReadResource() ([]byte, error)
}

// FileResource reads the resource from disk on every call.
type FileResource struct {
	Path string
}

func (f FileResource) Name() string { return f.Path }

func (f FileResource) ReadResource() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// EmbeddedResource reads the copy compiled into the binary.
type EmbeddedResource struct{}

func (EmbeddedResource) Name() string { return "embedded:" + BundledResourceName }

func (EmbeddedResource) ReadResource() ([]byte, error) {
	return bundled.ReadFile(BundledResourceName)
}

// ResourceFor returns a FileResource for a non-empty path and the embedded
// resource otherwise.
func ResourceFor(path string) ResourceSource {
	if path == "" {
		return EmbeddedResource{}
	}
	return FileResource{Path: path}
}

// resourceDoc is the decoded resource. Categories keep the key order of the
// JSON object, which becomes the index order.
type resourceDoc struct {
	Domains []CategoryDef
	Roles   []CategoryDef
}

// decodeResource walks the document with a token stream because
// map[string][]string would lose key order. Unknown top-level keys are skipped.
func decodeResource(data []byte) (resourceDoc, error) {
	var doc resourceDoc
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return doc, err
	}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return doc, err
		}
		switch key {
		case "domains":
			if doc.Domains, err = decodeCategories(dec); err != nil {
				return doc, fmt.Errorf("domains: %w", err)
			}
		case "roles":
			if doc.Roles, err = decodeCategories(dec); err != nil {
				return doc, fmt.Errorf("roles: %w", err)
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return doc, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return doc, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return doc, fmt.Errorf("trailing data after resource object")
	}
	return doc, nil
}

func decodeCategories(dec *json.Decoder) ([]CategoryDef, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var defs []CategoryDef
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var keywords []string
		if err := dec.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		defs = append(defs, CategoryDef{Name: name, Keywords: keywords})
	}
	return defs, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
