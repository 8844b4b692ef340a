package cdr

import (
	"context"
	"fmt"
	"time"

	"github.com/uctools/cucmapi/pkg/binding"
)

// FileList names the record files the repository node wrote during the
// interval [start, end], both in TimeFormat. The service caps the interval
// at one hour; longer spans take repeated calls. With all false the listing
// is reduced to files that failed delivery to their configured destination.
func (c *Client) FileList(ctx context.Context, start, end string, all bool) ([]string, error) {
	const op = "get_file_list"

	st, err := time.Parse(TimeFormat, start)
	if err != nil {
		return nil, &binding.ValidationError{Op: op, Path: "in0",
			Message: "interval bounds are YYYYMMDDHHMM in UTC"}
	}
	et, err := time.Parse(TimeFormat, end)
	if err != nil {
		return nil, &binding.ValidationError{Op: op, Path: "in1",
			Message: "interval bounds are YYYYMMDDHHMM in UTC"}
	}
	if et.Before(st) {
		return nil, &binding.ValidationError{Op: op, Path: "in1",
			Message: "interval end precedes its start"}
	}
	if et.Sub(st) > time.Hour {
		return nil, &binding.ValidationError{Op: op, Path: "in1",
			Message: "interval cannot exceed one hour"}
	}

	v, err := c.bind.Invoke(ctx, op, binding.Args{"in0": start, "in1": end, "in2": all}, nil)
	if err != nil {
		return nil, err
	}
	files, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	c.logger.Debug("file list fetched", "start", start, "end", end, "files", len(files))
	return files, nil
}

// SFTPTarget is where the repository node delivers a record file.
type SFTPTarget struct {
	Host      string
	User      string
	Password  string
	Directory string

	// UseFTP switches delivery to plain FTP. The service still defaults to
	// SFTP and that is the only sensible choice.
	UseFTP bool
}

// SendFile has the repository node push one record file, as named by
// FileList, to the target. The service processes one file per request and
// returns nothing on success.
func (c *Client) SendFile(ctx context.Context, target SFTPTarget, filename string) error {
	const op = "get_file"

	if target.Host == "" {
		return &binding.ValidationError{Op: op, Path: "in0", Message: "delivery host is required"}
	}
	if filename == "" {
		return &binding.ValidationError{Op: op, Path: "in4", Message: "file name is required"}
	}

	_, err := c.bind.Invoke(ctx, op, binding.Args{
		"in0": target.Host,
		"in1": target.User,
		"in2": target.Password,
		"in3": target.Directory,
		"in4": filename,
		"in5": !target.UseFTP,
	}, nil)
	if err != nil {
		return err
	}
	c.logger.Debug("file delivery requested", "file", filename, "host", target.Host)
	return nil
}
