package sshconfig

import (
	"errors"
	"testing"
)

func parseOne(t *testing.T, text string) *HostEntry {
	t.Helper()
	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	return entries[0]
}

func TestParse_CommentAttachesToHost(t *testing.T) {
	entry := parseOne(t, "# hi\nHost x\n\tHostName a\n")
	if entry.Comment != "hi" {
		t.Errorf("comment = %q, want %q", entry.Comment, "hi")
	}
	if entry.Endpoint.Hostname != "a" {
		t.Errorf("hostname = %q, want %q", entry.Endpoint.Hostname, "a")
	}
}

func TestParse_MultipleHostCommentsJoined(t *testing.T) {
	entry := parseOne(t, "# one\n# two\nHost x\n")
	if entry.Comment != "one two" {
		t.Errorf("comment = %q, want %q", entry.Comment, "one two")
	}
}

func TestParse_CommentBindsToNextDirective(t *testing.T) {
	entry := parseOne(t, "Host x\n\t# note\n\tFoo bar\n")
	if len(entry.Extra) != 1 {
		t.Fatalf("got %d extra directives, want 1", len(entry.Extra))
	}
	extra := entry.Extra[0]
	if extra.Key != "Foo" || extra.Value != "bar" || extra.Comment != "note" {
		t.Errorf("extra = %+v, want Foo/bar/note", extra)
	}
}

func TestParse_SentinelElided(t *testing.T) {
	entries, err := Parse(ManagedFileHeader + "\nHost x\n\tHostName a\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Comment != "" {
		t.Errorf("sentinel attached as comment %q", entries[0].Comment)
	}
}

func TestParse_SentinelBetweenBlocks(t *testing.T) {
	text := "Host a\n" + ManagedFileHeader + "\nHost b\n"
	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].Comment != "" {
		t.Errorf("sentinel attached to second entry: %q", entries[1].Comment)
	}
}

func TestParse_CommentBetweenBlocksBelongsToNext(t *testing.T) {
	entries, err := Parse("Host a\n\tHostName aa\n# for b\nHost b\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Comment != "" {
		t.Errorf("first entry comment = %q, want empty", entries[0].Comment)
	}
	if entries[1].Comment != "for b" {
		t.Errorf("second entry comment = %q, want %q", entries[1].Comment, "for b")
	}
}

func TestParse_RecognizedDirectives(t *testing.T) {
	entry := parseOne(t, "Host x\n\tHostName a.example\n\tPort 2222\n\tUser deploy\n\tIdentityFile /home/u/.ssh/x/id\n")
	if entry.Endpoint.Hostname != "a.example" {
		t.Errorf("hostname = %q", entry.Endpoint.Hostname)
	}
	if entry.Endpoint.Port == nil || *entry.Endpoint.Port != 2222 {
		t.Errorf("port = %v, want 2222", entry.Endpoint.Port)
	}
	if entry.Authentication.User != "deploy" {
		t.Errorf("user = %q", entry.Authentication.User)
	}
	if entry.Authentication.ResolvedIdentityFile != "/home/u/.ssh/x/id" {
		t.Errorf("resolved identity file = %q", entry.Authentication.ResolvedIdentityFile)
	}
	// Parsing never derives an original path.
	if entry.Authentication.OriginalIdentityFile != "" {
		t.Errorf("original identity file = %q, want empty", entry.Authentication.OriginalIdentityFile)
	}
	if len(entry.Extra) != 0 {
		t.Errorf("recognized keys leaked into extra: %+v", entry.Extra)
	}
}

func TestParse_ExtraDirectiveOrderPreserved(t *testing.T) {
	entry := parseOne(t, "Host x\n\tFoo 1\n\tBar 2\n\tFoo2 3\n")
	keys := make([]string, len(entry.Extra))
	for i, extra := range entry.Extra {
		keys[i] = extra.Key
	}
	want := []string{"Foo", "Bar", "Foo2"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("extra keys = %v, want %v", keys, want)
		}
	}
}

func TestParse_DirectiveCommentAppendsToEndpoint(t *testing.T) {
	entry := parseOne(t, "Host x\n\t# first\n\tHostName a\n\t# second\n\tPort 22\n")
	if entry.Endpoint.Comment != "first second" {
		t.Errorf("endpoint comment = %q, want %q", entry.Endpoint.Comment, "first second")
	}
}

func TestParse_MultipleBlocksInSourceOrder(t *testing.T) {
	entries, err := Parse("Host b\n\tHostName bb\nHost a\n\tHostName aa\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "b" || entries[1].Name != "a" {
		t.Errorf("entries reordered: %q, %q", entries[0].Name, entries[1].Name)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "directive before any host",
			input: "Foo bar\n",
			check: func(t *testing.T, err error) {
				var tokErr *UnexpectedTokenError
				if !errors.As(err, &tokErr) {
					t.Fatalf("error = %v, want UnexpectedTokenError", err)
				}
				if tokErr.Expected != TokenHostKeyword || tokErr.Actual != TokenItem {
					t.Errorf("got expected=%s actual=%s", tokErr.Expected, tokErr.Actual)
				}
			},
		},
		{
			name:  "host without name",
			input: "Host\n",
			check: func(t *testing.T, err error) {
				var eofErr *UnexpectedEOFError
				if !errors.As(err, &eofErr) {
					t.Fatalf("error = %v, want UnexpectedEOFError", err)
				}
			},
		},
		{
			name:  "host name is a comment",
			input: "Host # what\n",
			check: func(t *testing.T, err error) {
				var tokErr *UnexpectedTokenError
				if !errors.As(err, &tokErr) {
					t.Fatalf("error = %v, want UnexpectedTokenError", err)
				}
				if tokErr.Expected != TokenItem || tokErr.Actual != TokenComment {
					t.Errorf("got expected=%s actual=%s", tokErr.Expected, tokErr.Actual)
				}
			},
		},
		{
			name:  "directive key without value",
			input: "Host x\n\tFoo\n",
			check: func(t *testing.T, err error) {
				var eofErr *UnexpectedEOFError
				if !errors.As(err, &eofErr) {
					t.Fatalf("error = %v, want UnexpectedEOFError", err)
				}
			},
		},
		{
			name:  "port is not an integer",
			input: "Host x\n\tPort nope\n",
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			},
		},
		{
			name:  "only comments",
			input: "# nothing else\n",
			check: func(t *testing.T, err error) {
				var eofErr *UnexpectedEOFError
				if !errors.As(err, &eofErr) {
					t.Fatalf("error = %v, want UnexpectedEOFError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse() = %d entries, want error", len(entries))
			}
			if entries != nil {
				t.Errorf("failed parse still returned entries")
			}
			tt.check(t, err)
		})
	}
}

func TestParse_ErrorPositions(t *testing.T) {
	_, err := Parse("Host x\nHost # oops\n")
	var tokErr *UnexpectedTokenError
	if !errors.As(err, &tokErr) {
		t.Fatalf("error = %v, want UnexpectedTokenError", err)
	}
	if tokErr.Line != 2 || tokErr.Column != 6 {
		t.Errorf("error at %d:%d, want 2:6", tokErr.Line, tokErr.Column)
	}
}
