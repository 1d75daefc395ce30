package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// "Bearer <token>" values logged under an unexpected key.
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Connection strings with inline credentials: the mongo uri and the
	// redis url of the shared query cache are the ones this service sees.
	credentialedURI = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^\s/@]*:[^\s/@]+@\S+`)
)

// redactedFields are attribute keys whose values never reach the log output.
var redactedFields = []string{
	"authorization",
	"cookie",
	"password",
	"secret",
	"token",
	"mongo_uri",
	"redis_password",
}

// newRedactAttr returns the slog ReplaceAttr hook used by New. Store and
// cache settings are logged at startup, so the connection secrets they carry
// are masked by key and by value shape.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(redactedFields)+2)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithRegex(bearerValue),
		masq.WithRegex(credentialedURI),
	)
	return masq.New(opts...)
}
