package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Схемы исходящих payload'ов. Собранное тело create/update запроса
// проверяется против схемы до отправки на backend.

//go:embed payloads/*.json
var payloadsFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала регистрируем все схемы как ресурсы, чтобы работали $ref
	err := fs.WalkDir(payloadsFS, "payloads", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := payloadsFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Второй проход - компиляция и регистрация по ключу
	err = fs.WalkDir(payloadsFS, "payloads", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath: "payloads/housing_registration.json" -> "HousingRegistration".
func generateKeyFromPath(path string) string {
	name := strings.TrimSuffix(path[strings.LastIndex(path, "/")+1:], ".json")
	caser := cases.Title(language.English)

	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// ValidatePayload проверяет тело запроса против зарегистрированной схемы.
// Неизвестный ключ - ошибка программиста, а не данных.
func ValidatePayload(key string, payload []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("contracts: no schema registered for key %q", key)
	}

	var doc interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("contracts: payload is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("contracts: payload does not match schema %q: %w", key, err)
	}
	return nil
}
