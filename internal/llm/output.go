package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// StripCodeFences removes a surrounding ```json ... ``` block, which some
// models emit even in JSON mode. The fence may share a line with the
// payload. Text without a leading fence is returned trimmed but otherwise
// unchanged.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	body, ok := strings.CutPrefix(s, "```")
	if !ok {
		return s
	}
	body = dropInfoString(body)
	body, _ = strings.CutSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

// dropInfoString removes the language tag after an opening fence: a whole
// first line made of tag characters, or an inline "json" of any case.
func dropInfoString(body string) string {
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && isInfoString(strings.TrimSpace(body[:nl])) {
		return body[nl+1:]
	}
	if len(body) >= 4 && strings.EqualFold(body[:4], "json") {
		return body[4:]
	}
	return body
}

func isInfoString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-_.", r) {
			return false
		}
	}
	return true
}

// finishOutput turns raw model text into the Response content. Truncated
// output is an error regardless of schema, so a half-written JSON document
// is never handed to the caller.
func finishOutput(provider string, req Request, text string, finish Finish) (json.RawMessage, error) {
	if finish == FinishLength {
		return nil, &Error{
			Kind:     KindTruncated,
			Provider: provider,
			Content:  json.RawMessage(text),
			Err:      fmt.Errorf("output exceeded %d tokens", req.MaxTokens),
		}
	}
	if req.Schema == nil {
		return json.RawMessage(text), nil
	}

	content := json.RawMessage(StripCodeFences(text))
	if err := schemas.validate(req.Schema, content); err != nil {
		return nil, &Error{Kind: KindInvalidOutput, Provider: provider, Content: content, Err: err}
	}
	return content, nil
}

var errEmptyOutput = errors.New("empty output")

// schemaSet compiles each named schema once.
type schemaSet struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaSet{compiled: make(map[string]*jsonschema.Schema)}

func (s *schemaSet) validate(schema *Schema, content json.RawMessage) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return errEmptyOutput
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("decode output: %w", err)
	}
	compiled, err := s.get(schema)
	if err != nil {
		return err
	}
	return compiled.Validate(doc)
}

func (s *schemaSet) get(schema *Schema) (*jsonschema.Schema, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.compiled[schema.Name]; ok {
		return c, nil
	}

	// Round-trip through JSON so the compiler sees plain decoded values
	// instead of whatever Go types built the definition.
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %q: %w", schema.Name, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("load schema %q: %w", schema.Name, err)
	}
	c, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}
	s.compiled[schema.Name] = c
	return c, nil
}
