package billclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// envelopePaths are the wrappers the gateway has been seen to use, in the
// order they are tried.
var envelopePaths = []string{"result", "data.result", "data"}

// unwrap returns the payload inside body. The first envelope path present
// wins, even when it holds null; within it the named key is preferred when
// present.
func unwrap(body []byte, key string) gjson.Result {
	root := gjson.ParseBytes(body)

	payload := root
	for _, p := range envelopePaths {
		if r := root.Get(p); r.Exists() {
			payload = r
			break
		}
	}

	if key != "" {
		if r := payload.Get(key); r.Exists() {
			return r
		}
	}
	return payload
}

// decode unmarshals the normalized payload of body into out.
func decode(body []byte, key string, out any) error {
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("response is not valid JSON")
	}
	payload := unwrap(body, key)
	if err := json.Unmarshal([]byte(payload.Raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", describe(key), err)
	}
	return nil
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(body []byte) (code, message string) {
	if !gjson.ValidBytes(body) {
		return "", strings.TrimSpace(string(body))
	}
	res := gjson.GetManyBytes(body, "code", "message", "error.message", "error")
	code = res[0].String()
	switch {
	case res[1].Exists():
		message = res[1].String()
	case res[2].Exists():
		message = res[2].String()
	case res[3].Type == gjson.String:
		message = res[3].String()
	}
	return code, message
}

func describe(key string) string {
	if key == "" {
		return "response"
	}
	return key
}
