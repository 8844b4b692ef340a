package axl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
)

// ExecuteSQLQuery runs a SQL query against the publisher database. Rows come
// back as raw column text: the schema says nothing about SQL results, so no
// typing or projection applies.
func (c *Client) ExecuteSQLQuery(ctx context.Context, sql string) ([]binding.Row, error) {
	if strings.TrimSpace(sql) == "" {
		return nil, &binding.ValidationError{Op: "executeSQLQuery", Path: "sql", Message: "empty statement"}
	}
	op, err := c.ops.Resolve("executeSQLQuery")
	if err != nil {
		return nil, err
	}
	payload, err := c.bind.InvokeRaw(ctx, op.Name, binding.Args{"sql": sql}, nil)
	if err != nil {
		return nil, err
	}
	return binding.NormalizeRows(c.types, op, payload)
}

// ExecuteSQLUpdate runs a DML statement and returns the affected row count.
func (c *Client) ExecuteSQLUpdate(ctx context.Context, sql string) (int, error) {
	if strings.TrimSpace(sql) == "" {
		return 0, &binding.ValidationError{Op: "executeSQLUpdate", Path: "sql", Message: "empty statement"}
	}
	got, err := c.bind.Invoke(ctx, "executeSQLUpdate", binding.Args{"sql": sql}, nil)
	if err != nil {
		return 0, err
	}
	text, _ := got.(string)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("executeSQLUpdate: unexpected row count %q", text)
	}
	return n, nil
}

// CCMVersion returns the cluster's active software version, or a specific
// node's when one is named.
func (c *Client) CCMVersion(ctx context.Context, node string) (string, error) {
	args := binding.Args{}
	if node != "" {
		args["processNodeName"] = node
	}
	got, err := c.bind.Invoke(ctx, "getCCMVersion", args, nil)
	if err != nil {
		return "", err
	}
	version, _ := got.(string)
	return version, nil
}
