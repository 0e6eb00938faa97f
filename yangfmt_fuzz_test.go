package yangfmt

import (
	"bytes"
	"context"
	"testing"
)

func FuzzFormatIdempotent(f *testing.F) {
	seeds := []string{
		"module m { leaf x; }",
		"module m {\n\n\nleaf x;\n}",
		"pattern \"a\" + 'b';",
		"description \"one\n  two\";",
		"// comment\nleaf x; // trailing",
		"/* a\n * b\n */",
		"container c {}",
		"tailf:info 'hi';",
		"leaf x { default ' spaced '; }",
		"",
		"module m {",
		"}",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ctx := context.Background()

		once, err := Format(ctx, "fuzz", data)
		if err != nil {
			// Rejected input is fine; partial output is not.
			if once != nil {
				t.Errorf("Format returned output alongside error %v", err)
			}
			return
		}

		// Formatted output must itself be valid input.
		twice, err := Format(ctx, "fuzz", once)
		if err != nil {
			t.Fatalf("output of Format does not parse: %v\ninput: %q\noutput: %q", err, data, once)
		}

		// And formatting must be a fixed point.
		if !bytes.Equal(once, twice) {
			t.Errorf("Format not idempotent\ninput:  %q\nonce:   %q\ntwice:  %q", data, once, twice)
		}
	})
}
