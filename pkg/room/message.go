package room

// PayloadIn is a client-to-server message.
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
	Context        string         `json:"context"`
}

// AdditionalData provides additional data for an action.
type AdditionalData map[string]interface{}

// GetString returns the string value by the key.
// If not found, or not a string, false is returned.
func (a AdditionalData) GetString(key string) (string, bool) {
	if a == nil {
		return "", false
	}

	val, ok := a[key]
	if !ok {
		return "", false
	}

	s, ok := val.(string)
	return s, ok
}

// GetInt returns the int value by the key.
// JSON numbers decode as float64, so the value is truncated.
func (a AdditionalData) GetInt(key string) (int, bool) {
	if a == nil {
		return 0, false
	}

	val, ok := a[key]
	if !ok {
		return 0, false
	}

	switch n := val.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}

	return 0, false
}

// Response is a server-to-client message.
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns an OK response for the given context.
func OK(context ...string) *Response {
	ctx := ""
	if len(context) > 0 {
		ctx = context[0]
	}

	return &Response{
		Key:     "status",
		Value:   "OK",
		Context: ctx,
	}
}

func newErrorResponse(context string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: context,
	}
}
