package studyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/csheth/studypal/internal/explain"
)

// explainResultFields must be present as strings for a body to count as a
// result.
var explainResultFields = []string{"topic", "explanation"}

type explainRequest struct {
	Topic string `json:"topic"`
}

// Explain posts topic to /explain and parses the explanation.
func (c *Client) Explain(ctx context.Context, topic string) (explain.Result, error) {
	buf, err := json.Marshal(explainRequest{Topic: topic})
	if err != nil {
		return explain.Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/explain", bytes.NewReader(buf))
	if err != nil {
		return explain.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return explain.Result{}, err
	}
	var result explain.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return explain.Result{}, &DecodeError{Endpoint: "/explain", Err: err}
	}
	for _, field := range explainResultFields {
		if gjson.GetBytes(body, field).Type != gjson.String {
			return explain.Result{}, &DecodeError{Endpoint: "/explain", Err: fmt.Errorf("missing string field %q", field)}
		}
	}
	return result, nil
}
