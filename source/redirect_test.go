package source

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirect(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "plain url",
			target: "https://example.com/a",
			want:   `<meta http-equiv="refresh" content="0; URL=https://example.com/a" />`,
		},
		{
			name:   "query string",
			target: "https://example.com/?a=1&b=2",
			want:   `<meta http-equiv="refresh" content="0; URL=https://example.com/?a=1&amp;b=2" />`,
		},
		{
			name:   "attribute breakout",
			target: `https://x/"><script>alert(1)</script>`,
			want:   `<meta http-equiv="refresh" content="0; URL=https://x/&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Redirect(tt.target)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
			assert.Equal(t, int64(len(body)), r.Length)
			assert.Equal(t, "text/html", r.ContentType)
			assert.Empty(t, r.Extension)
			assert.Equal(t, RedirectSource{Target: tt.target}, r.Source)
			assert.NoError(t, r.Close())
		})
	}
}
