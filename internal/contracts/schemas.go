package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theanasiqbal/Upfox-Property/schemas"
)

// Типы и версии событий. Ключ схемы - "<тип>/<версия>".
const (
	EventPropertySubmitted     = "PropertySubmittedEvent"
	EventPropertyStatusChanged = "PropertyStatusChangedEvent"
	EventPropertyViewed        = "PropertyViewedEvent"

	VersionV1 = "1.0.0"
)

// Registry хранит скомпилированные схемы событий.
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

var defaultRegistry = mustLoadRegistry(schemas.SchemasFS)

func mustLoadRegistry(fsys fs.FS) *Registry {
	r, err := LoadRegistry(fsys)
	if err != nil {
		panic(fmt.Sprintf("contracts: %v", err))
	}
	return r
}

// LoadRegistry компилирует все *.json из каталога events.
// Сначала все файлы добавляются как ресурсы, чтобы работали $ref между схемами.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(fsys, "events", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		file, err := fsys.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open schema %s: %w", path, err)
		}
		defer file.Close()

		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		key := generateKeyFromPath(path)
		if key == "" {
			return nil, fmt.Errorf("unexpected schema path %s", path)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		r.schemas[key] = schema
	}
	return r, nil
}

// generateKeyFromPath: "events/property-status-changed/v1.json" -> "PropertyStatusChangedEvent/1.0.0"
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "events/"), ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Event")

	version := strings.TrimPrefix(parts[1], "v") + ".0.0"
	return name.String() + "/" + version
}

// Keys возвращает ключи всех загруженных схем
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		keys = append(keys, k)
	}
	return keys
}

func (r *Registry) Validate(eventType, eventVersion string, body []byte) error {
	key := eventType + "/" + eventVersion
	schema, ok := r.schemas[key]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventType, eventVersion)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ValidateEvent проверяет тело сообщения по встроенной схеме
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return defaultRegistry.Validate(eventType, eventVersion, body)
}
