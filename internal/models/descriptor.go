// internal/models/descriptor.go

// Package models declares the record types of the remote key repository
// descriptor (the repository's config.json).
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OptionalInt decodes a JSON field that may arrive as a number, a numeric
// string, or be absent entirely.
type OptionalInt struct {
	value *int
}

// NewOptionalInt wraps a concrete value, mainly for tests.
func NewOptionalInt(v int) OptionalInt {
	return OptionalInt{value: &v}
}

// Int returns a fresh copy of the value, or nil when absent.
func (o OptionalInt) Int() *int {
	if o.value == nil {
		return nil
	}
	v := *o.value
	return &v
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" || text == `""` {
		o.value = nil
		return nil
	}
	text = strings.Trim(text, `"`)
	v, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid integer value %s: %v", string(data), err)
	}
	o.value = &v
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// EndpointRecord is one endpoint alternative of a server.
type EndpointRecord struct {
	HostName string      `json:"HostName,omitempty"`
	Port     OptionalInt `json:"Port,omitempty"`
	Comment  string      `json:"Comment,omitempty"`
}

// AuthRecord is one authentication alternative of a server. IdentityFile
// is relative to the key repository root.
type AuthRecord struct {
	User         string `json:"User,omitempty"`
	IdentityFile string `json:"IdentityFile,omitempty"`
	Comment      string `json:"Comment,omitempty"`
}

// ExtraRecord is a verbatim directive carried into every host entry built
// from the descriptor, regardless of which alternatives are chosen.
type ExtraRecord struct {
	Key     string `json:"Key"`
	Value   string `json:"Value"`
	Comment string `json:"Comment,omitempty"`
}

// HostDescriptor is one server record of the key repository.
type HostDescriptor struct {
	ServerName     string           `json:"ServerName"`
	Comment        string           `json:"Comment,omitempty"`
	Endpoint       []EndpointRecord `json:"Endpoint,omitempty"`
	Authentication []AuthRecord     `json:"Authentication,omitempty"`
	ExtraConfig    []ExtraRecord    `json:"ExtraConfig,omitempty"`
}
