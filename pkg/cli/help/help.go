// Package help provides embedded documentation for patternctl help topics.
package help

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
)

//go:embed topics/*.txt
var topics embed.FS

// ErrUnknownTopic is returned for a topic that does not exist.
var ErrUnknownTopic = errors.New("unknown help topic")

// AvailableTopics lists all available help topics.
var AvailableTopics = []string{"syntax", "format", "config", "transformers"}

// TopicDescriptions provides short descriptions for each topic.
var TopicDescriptions = map[string]string{
	"syntax":       "Placeholder syntax, presets and auxiliary groups",
	"format":       "Format specs and conversions used by replace",
	"config":       "Pattern-set file format",
	"transformers": "Transformer specs (names, expr:, jsonpath:)",
}

// IsTopic reports whether name is a help topic.
func IsTopic(name string) bool {
	return slices.Contains(AvailableTopics, strings.ToLower(strings.TrimSpace(name)))
}

// GetTopic retrieves the content of a help topic by name.
func GetTopic(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !slices.Contains(AvailableTopics, name) {
		return "", fmt.Errorf("%w: %s\n\nAvailable topics:\n%s", ErrUnknownTopic, name, ListTopics())
	}

	content, err := topics.ReadFile("topics/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read topic %s: %w", name, err)
	}
	return string(content), nil
}

// ListTopics returns a formatted list of available topics.
func ListTopics() string {
	var sb strings.Builder
	for _, topic := range AvailableTopics {
		fmt.Fprintf(&sb, "  %-15s %s\n", topic, TopicDescriptions[topic])
	}
	return sb.String()
}
