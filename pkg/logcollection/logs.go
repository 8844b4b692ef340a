package logcollection

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
)

// NodeLogs is one node's inventory of service log directories.
type NodeLogs struct {
	Node        string
	ServiceLogs []string
}

// FileCriteria narrows a log file selection. ServiceLogs and SystemLogs name
// the log directories to search, as returned by ListNodeServiceLogs. Empty
// time bounds leave that side of the window open.
//
// The zero value selects on demand with the service defaults: every matching
// file, downloaded to the caller. Set JobType to PushtoSFTPServer together
// with the SFTP fields to have the cluster deliver the files instead.
type FileCriteria struct {
	ServiceLogs []string
	SystemLogs  []string
	SearchStr   string

	// Frequency is OnDemand, Daily, Weekly, or Monthly. Empty means OnDemand.
	Frequency string
	// JobType is DownloadtoClient or PushtoSFTPServer. Empty means
	// DownloadtoClient.
	JobType string

	FromDate string // mm/dd/yy hh:mm AM/PM, empty for an open lower bound
	ToDate   string
	TimeZone string

	// RelText and RelTime bound the window relative to now instead of by
	// absolute dates. RelText is Minutes, Hours, Days, Weeks, or Months and
	// defaults to Minutes; RelTime defaults to 60.
	RelText string
	RelTime int

	// SFTP delivery target, used when JobType is PushtoSFTPServer.
	Port         int
	IPAddress    string
	UserName     string
	Password     string
	ZipInfo      bool
	RemoteFolder string
}

// FileInfo describes one selectable log file.
type FileInfo struct {
	AbsolutePath string
	Name         string
	Size         int64
	Modified     string
}

// FileSelection is the outcome of one selectLogFiles call.
type FileSelection struct {
	Node  string
	Files []FileInfo
}

// ListNodeServiceLogs reports, per node, the service log directories
// available for selection.
func (c *Client) ListNodeServiceLogs(ctx context.Context) ([]NodeLogs, error) {
	v, err := c.bind.Invoke(ctx, "listNodeServiceLogs", binding.Args{"ListRequest": binding.Args{}}, nil)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]binding.Object)
	if !ok {
		return nil, fmt.Errorf("listNodeServiceLogs: unexpected result shape %T", v)
	}

	out := make([]NodeLogs, 0, len(items))
	for _, it := range items {
		out = append(out, NodeLogs{
			Node:        it.String("name"),
			ServiceLogs: it.Strings("ServiceLog"),
		})
	}
	return out, nil
}

// SelectLogFiles asks the cluster which log files match the criteria. With
// the default OnDemand job the result lists the files for retrieval through
// GetOneFile; a PushtoSFTPServer job additionally schedules delivery.
func (c *Client) SelectLogFiles(ctx context.Context, crit FileCriteria) (*FileSelection, error) {
	const op = "selectLogFiles"

	jobType := crit.JobType
	if jobType == "" {
		jobType = "DownloadtoClient"
	}
	if jobType == "PushtoSFTPServer" && crit.IPAddress == "" {
		return nil, &binding.ValidationError{Op: op, Path: "FileSelectionCriteria.IPAddress",
			Message: "PushtoSFTPServer requires an SFTP target"}
	}

	fields := binding.Args{
		"Frequency": orDefault(crit.Frequency, "OnDemand"),
		"JobType":   jobType,
		"RelText":   orDefault(crit.RelText, "Minutes"),
		"RelTime":   relTime(crit.RelTime),
		"ZipInfo":   crit.ZipInfo,
	}
	if len(crit.ServiceLogs) > 0 {
		fields["ServiceLogs"] = crit.ServiceLogs
	}
	if len(crit.SystemLogs) > 0 {
		fields["SystemLogs"] = crit.SystemLogs
	}
	if crit.SearchStr != "" {
		fields["SearchStr"] = crit.SearchStr
	}
	if crit.ToDate != "" {
		fields["ToDate"] = crit.ToDate
	}
	if crit.FromDate != "" {
		fields["FromDate"] = crit.FromDate
	}
	if crit.TimeZone != "" {
		fields["TimeZone"] = crit.TimeZone
	}
	if crit.Port != 0 {
		fields["Port"] = crit.Port
	}
	if crit.IPAddress != "" {
		fields["IPAddress"] = crit.IPAddress
	}
	if crit.UserName != "" {
		fields["UserName"] = crit.UserName
	}
	if crit.Password != "" {
		fields["Password"] = crit.Password
	}
	if crit.RemoteFolder != "" {
		fields["RemoteFolder"] = crit.RemoteFolder
	}

	v, err := c.bind.Invoke(ctx, op, binding.Args{"FileSelectionCriteria": fields}, nil)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}

	sel := &FileSelection{Node: obj.String("Name")}
	for _, it := range obj.Child("ServiceList").List("item") {
		sel.Files = append(sel.Files, FileInfo{
			AbsolutePath: it.String("absolutepath"),
			Name:         it.String("filename"),
			Size:         num64(it.String("filesize")),
			Modified:     it.String("modifiedDate"),
		})
	}
	c.logger.Debug("log files selected", "node", sel.Node, "files", len(sel.Files))
	return sel, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func relTime(n int) int {
	if n == 0 {
		return 60
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
