// Package zenquotes fetches a daily motivational quote from zenquotes.io.
//
// The fetch is best effort: a failure here must never affect the ledger, so
// callers are expected to log and carry on.
package zenquotes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const apiURL = "https://zenquotes.io/api/random"

// FetchDailyQuote returns a random quote formatted as `"text" - author`.
func FetchDailyQuote() (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	return fetchQuote(client, apiURL)
}

func fetchQuote(client *http.Client, addr string) (string, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return "", fmt.Errorf("cannot fetch quote: %w", err)
	}

	text, err := jstring(jobj, "$[0].q")
	if err != nil {
		return "", fmt.Errorf("cannot parse quote: %w", err)
	}
	author, err := jstring(jobj, "$[0].a")
	if err != nil {
		return "", fmt.Errorf("cannot parse quote author: %w", err)
	}
	return fmt.Sprintf("%q - %s", text, author), nil
}

// jstring extracts a single string value from an untyped JSON payload.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}
