package telemetry

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactUrl(t *testing.T) {
	u, err := url.Parse("https://api.meetup.com/2/members?group_urlname=sqlite&key=secret&sign=true")
	if err != nil {
		t.Fatal(err)
	}
	redacted := RedactUrl(u)
	require.NotContains(t, redacted, "secret")
	require.Contains(t, redacted, "key=redacted")
	require.Contains(t, redacted, "group_urlname=sqlite")

	plain, err := url.Parse("https://api.meetup.com/2/members?offset=1")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, plain.String(), RedactUrl(plain))
	require.Equal(t, "", RedactUrl(nil))
}
