package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Corpus is the chat export: a category dictionary plus the chats themselves.
type Corpus struct {
	Categories Categories `json:"categories"`
	Chats      []Chat     `json:"chats"`
}

// ParseCorpus decodes a chats.json document.
func ParseCorpus(data []byte) (*Corpus, error) {
	var corpus Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	return &corpus, nil
}

// ChatsFor returns the chats that explicitly list the given category.
func (c *Corpus) ChatsFor(category string) []Chat {
	var selected []Chat
	for _, chat := range c.Chats {
		if chat.HasCategory(category) {
			selected = append(selected, chat)
		}
	}
	return selected
}

// Category is one entry of the corpus category dictionary.
// Only the name is needed for word counting; keywords drive category assignment.
type Category struct {
	Name     string
	Keywords []string

	raw json.RawMessage
}

// Categories keeps the corpus dictionary in document order.
type Categories []Category

// Names returns the category labels in dictionary order.
func (cs Categories) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// UnmarshalJSON decodes a JSON object while preserving key order.
// A repeated key keeps its first position and takes the last value.
func (cs *Categories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*cs = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	var out Categories
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("categories: unexpected key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("categories: value for %q: %w", name, err)
		}

		cat := Category{Name: name, raw: raw}
		var keywords []string
		if json.Unmarshal(raw, &keywords) == nil {
			cat.Keywords = keywords
		}

		if i, seen := index[name]; seen {
			out[i] = cat
			continue
		}
		index[name] = len(out)
		out = append(out, cat)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*cs = out
	return nil
}

// MarshalJSON writes the dictionary back in its original order and with its original values.
func (cs Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value := []byte(c.raw)
		if len(value) == 0 {
			if value, err = json.Marshal(c.Keywords); err != nil {
				return nil, err
			}
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Chat is a single conversation: a title, assigned categories and message texts.
// Fields the tool does not know about are kept so the chat can be re-encoded.
type Chat struct {
	Title      string
	Categories []string
	Messages   []string

	extra map[string]json.RawMessage
}

// HasCategory reports whether the chat lists the category.
func (c Chat) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}

// FullText joins the title and every message with single spaces.
func (c Chat) FullText() string {
	return c.Title + " " + strings.Join(c.Messages, " ")
}

func (c *Chat) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*c = Chat{}
	if err := decodeField(fields, "title", &c.Title); err != nil {
		return err
	}
	if err := decodeField(fields, "categories", &c.Categories); err != nil {
		return err
	}
	if err := decodeField(fields, "chats", &c.Messages); err != nil {
		return err
	}
	if len(fields) > 0 {
		c.extra = fields
	}
	return nil
}

func (c Chat) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(c.extra)+3)
	for k, v := range c.extra {
		fields[k] = v
	}

	categories := c.Categories
	if categories == nil {
		categories = []string{}
	}
	messages := c.Messages
	if messages == nil {
		messages = []string{}
	}
	fields["title"] = c.Title
	fields["categories"] = categories
	fields["chats"] = messages

	return json.Marshal(fields)
}

// decodeField decodes and removes a known key. Missing and null values leave dst untouched.
func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	delete(fields, key)
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("chat field %q: %w", key, err)
	}
	return nil
}
