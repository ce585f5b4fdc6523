package schematic

import (
	"context"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/jsonschema"
)

// FromJSON parses data, validates it against the derived schema, and
// returns a populated instance.
//
// Malformed JSON fails with a ParseError before any schema work. Schema
// violations fail with a single ValidationError aggregating every violated
// instance path and rule. On success a zero instance is constructed and
// every parsed field is assigned through its declared Set accessor; a
// partially populated instance is never returned.
func (p *Processor[T, PT]) FromJSON(data []byte) (PT, error) {
	ctx := context.Background()
	start := time.Now()
	emitParseStart(ctx, p.typeName, len(data))

	var retErr error
	var issues int
	defer func() {
		emitParseComplete(ctx, p.typeName, time.Since(start), issues, retErr)
	}()

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		retErr = &ParseError{Text: string(data), Cause: err}
		return nil, retErr
	}

	result := p.compiled.Validate(raw)
	if !result.IsValid() {
		verr := &ValidationError{Issues: collectIssues(result.ToList(), nil)}
		issues = len(verr.Issues)
		retErr = verr
		return nil, retErr
	}

	// The schema is a closed object, so a valid instance is always a JSON
	// object at this point.
	parsed, _ := raw.(map[string]any)

	out, err := populate[T, PT](parsed)
	if err != nil {
		retErr = newAssignError(err)
		return nil, retErr
	}
	return out, nil
}

// collectIssues walks the validator's evaluation tree and flattens every
// reported violation into Issues, sorted by path then keyword so aggregated
// messages are deterministic.
func collectIssues(list *jsonschema.List, out []Issue) []Issue {
	if list == nil {
		return out
	}
	out = appendListIssues(list, out)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

func appendListIssues(list *jsonschema.List, out []Issue) []Issue {
	for keyword, message := range list.Errors {
		out = append(out, Issue{
			Path:    list.InstanceLocation,
			Keyword: keyword,
			Message: message,
		})
	}
	for i := range list.Details {
		out = appendListIssues(&list.Details[i], out)
	}
	return out
}
