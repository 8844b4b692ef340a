package perfmon

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
)

// CounterPath names one counter: \\host\object\counter, with the object
// optionally qualified by an instance as object(instance).
type CounterPath struct {
	Host     string
	Object   string
	Instance string
	Counter  string
}

// String renders the backslash form the service takes.
func (p CounterPath) String() string {
	obj := p.Object
	if p.Instance != "" {
		obj += "(" + p.Instance + ")"
	}
	return `\\` + p.Host + `\` + obj + `\` + p.Counter
}

// ParseCounterPath splits a backslash counter path into its parts.
func ParseCounterPath(s string) (CounterPath, error) {
	rest, ok := strings.CutPrefix(s, `\\`)
	if !ok {
		return CounterPath{}, fmt.Errorf(`counter path %q: want \\host\object(instance)\counter`, s)
	}
	parts := strings.Split(rest, `\`)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return CounterPath{}, fmt.Errorf(`counter path %q: want \\host\object(instance)\counter`, s)
	}

	p := CounterPath{Host: parts[0], Object: parts[1], Counter: parts[2]}
	if i := strings.LastIndex(p.Object, "("); i > 0 && strings.HasSuffix(p.Object, ")") {
		p.Instance = p.Object[i+1 : len(p.Object)-1]
		p.Object = p.Object[:i]
	}
	return p, nil
}

// CounterValue is one collected counter reading. Status 0 and 1 mean the
// value is valid; higher codes flag stale or unavailable data.
type CounterValue struct {
	Name   string
	Value  int64
	Status int
}

// ObjectInfo describes one counter object available on a host. Objects with
// MultiInstance set address their counters per instance.
type ObjectInfo struct {
	Name          string
	MultiInstance bool
}

// CollectCounterData reads every counter of an object on a host in one
// transaction, covering all instances. Session based collection is cheaper
// when the same counters are read repeatedly.
func (c *Client) CollectCounterData(ctx context.Context, host, object string) ([]CounterValue, error) {
	const op = "perfmonCollectCounterData"
	v, err := c.bind.Invoke(ctx, op, binding.Args{"Host": host, "Object": object}, nil)
	if err != nil {
		return nil, err
	}
	return counterValues(op, v)
}

// ListCounters reports the counter objects installed on a host.
func (c *Client) ListCounters(ctx context.Context, host string) ([]ObjectInfo, error) {
	const op = "perfmonListCounter"
	v, err := c.bind.Invoke(ctx, op, binding.Args{"Host": host}, nil)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}

	out := make([]ObjectInfo, 0, len(items))
	for _, it := range items {
		out = append(out, ObjectInfo{
			Name:          it.String("Name"),
			MultiInstance: it.String("MultiInstance") == "true",
		})
	}
	return out, nil
}

// ListInstances reports the current instances of an object on a host. The
// set changes as devices register and calls come and go.
func (c *Client) ListInstances(ctx context.Context, host, object string) ([]string, error) {
	const op = "perfmonListInstance"
	v, err := c.bind.Invoke(ctx, op, binding.Args{"Host": host, "Object": object}, nil)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String("Name"))
	}
	return out, nil
}

// CounterDescription returns the human readable description of a counter.
func (c *Client) CounterDescription(ctx context.Context, counter string) (string, error) {
	const op = "perfmonQueryCounterDescription"
	v, err := c.bind.Invoke(ctx, op, binding.Args{"Counter": counter}, nil)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	return s, nil
}

func counterValues(op string, v any) ([]CounterValue, error) {
	items, ok := v.([]binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}

	out := make([]CounterValue, 0, len(items))
	for _, it := range items {
		out = append(out, CounterValue{
			Name:   it.String("Name"),
			Value:  num64(it.String("Value")),
			Status: num(it.String("CStatus")),
		})
	}
	return out, nil
}

func num(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func num64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
