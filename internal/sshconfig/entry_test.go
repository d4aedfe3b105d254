package sshconfig

import (
	"errors"
	"strings"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestHostEntry_Render(t *testing.T) {
	tests := []struct {
		name  string
		entry *HostEntry
		want  string
	}{
		{
			name:  "name only",
			entry: &HostEntry{Name: "x"},
			want:  "Host x\n",
		},
		{
			name: "full block",
			entry: &HostEntry{
				Name:    "box",
				Comment: "my box",
				Endpoint: Endpoint{
					Hostname: "box.example",
					Port:     intPtr(2222),
					Comment:  "primary",
				},
				Authentication: Authentication{
					User:                 "deploy",
					ResolvedIdentityFile: "/home/u/.ssh/box/id",
				},
				Extra: []ExtraDirective{
					{Key: "ForwardAgent", Value: "yes", Comment: "needed for hops"},
				},
			},
			want: "# my box\n" +
				"Host box\n" +
				"\t# primary\n" +
				"\tHostName box.example\n" +
				"\tPort 2222\n" +
				"\tUser deploy\n" +
				"\tIdentityFile /home/u/.ssh/box/id\n" +
				"\t# needed for hops\n" +
				"\tForwardAgent yes\n",
		},
		{
			name: "absent fields omit their lines",
			entry: &HostEntry{
				Name:     "y",
				Endpoint: Endpoint{Hostname: "y.example"},
			},
			want: "Host y\n\tHostName y.example\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entry.Render(0)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestHostEntry_RenderIndented(t *testing.T) {
	entry := &HostEntry{Name: "x", Endpoint: Endpoint{Hostname: "a"}}
	got, err := entry.Render(1)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "\tHost x\n\t\tHostName a\n"
	if got != want {
		t.Errorf("Render(1) = %q, want %q", got, want)
	}
}

func TestHostEntry_RenderMissingName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		entry := &HostEntry{Name: name}
		if _, err := entry.Render(0); err == nil {
			t.Errorf("Render() with name %q: want MissingNameError, got nil", name)
		} else {
			var missing *MissingNameError
			if !errors.As(err, &missing) {
				t.Errorf("Render() with name %q: error = %v, want MissingNameError", name, err)
			}
		}
	}
}

func TestExtraDirective_RenderMissingField(t *testing.T) {
	tests := []struct {
		name  string
		extra ExtraDirective
		field string
	}{
		{"missing value", ExtraDirective{Key: "Foo"}, "value"},
		{"missing key", ExtraDirective{Value: "bar"}, "key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &HostEntry{Name: "x", Extra: []ExtraDirective{tt.extra}}
			_, err := entry.Render(0)
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want MissingFieldError", err)
			}
			if missing.Field != tt.field {
				t.Errorf("field = %q, want %q", missing.Field, tt.field)
			}
		})
	}
}

func TestApplyDirective_Dispatch(t *testing.T) {
	entry := NewHostEntry("x", "")
	steps := []struct {
		key, value, comment string
	}{
		{"HostName", "a.example", "ep"},
		{"Port", "22", ""},
		{"User", "root", "au"},
		{"IdentityFile", "/tmp/id", ""},
		{"Compression", "yes", "extra"},
	}
	for _, s := range steps {
		if err := entry.ApplyDirective(s.key, s.value, s.comment); err != nil {
			t.Fatalf("ApplyDirective(%s) error: %v", s.key, err)
		}
	}

	if entry.Endpoint.Hostname != "a.example" || entry.Endpoint.Comment != "ep" {
		t.Errorf("endpoint = %+v", entry.Endpoint)
	}
	if entry.Endpoint.Port == nil || *entry.Endpoint.Port != 22 {
		t.Errorf("port = %v, want 22", entry.Endpoint.Port)
	}
	if entry.Authentication.User != "root" || entry.Authentication.Comment != "au" {
		t.Errorf("authentication = %+v", entry.Authentication)
	}
	if entry.Authentication.ResolvedIdentityFile != "/tmp/id" {
		t.Errorf("resolved identity file = %q", entry.Authentication.ResolvedIdentityFile)
	}
	if len(entry.Extra) != 1 || entry.Extra[0].Key != "Compression" {
		t.Errorf("extra = %+v", entry.Extra)
	}
}

func TestApplyDirective_BadPort(t *testing.T) {
	entry := NewHostEntry("x", "")
	if err := entry.ApplyDirective("Port", "twenty-two", ""); err == nil {
		t.Fatal("expected error for non-integer port")
	}
}

func TestRenderDocument(t *testing.T) {
	entries := []*HostEntry{
		{Name: "beta", Endpoint: Endpoint{Hostname: "b"}},
		{Name: "alpha", Endpoint: Endpoint{Hostname: "a"}},
	}
	doc, err := RenderDocument(entries)
	if err != nil {
		t.Fatalf("RenderDocument() error: %v", err)
	}

	want := ManagedFileHeader + "\n" +
		"\nHost alpha\n\tHostName a\n" +
		"\nHost beta\n\tHostName b\n"
	if doc != want {
		t.Errorf("RenderDocument() =\n%q\nwant\n%q", doc, want)
	}

	// Sorting is internal to the document render; the input keeps its order.
	if entries[0].Name != "beta" {
		t.Errorf("caller slice reordered: first = %q", entries[0].Name)
	}
	if !strings.HasSuffix(doc, "\n") {
		t.Error("document lacks trailing newline")
	}
}

func TestRenderDocument_EntryFailure(t *testing.T) {
	entries := []*HostEntry{{Name: ""}}
	if _, err := RenderDocument(entries); err == nil {
		t.Fatal("expected error for unnamed entry")
	}
}
