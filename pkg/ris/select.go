package ris

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/uctools/cucmapi/pkg/binding"
)

// maxSelectItems is the server-side cap on devices per selection request.
// Larger device lists are split and the results merged.
const maxSelectItems = 1000

// maxNodeFanout bounds concurrent per-node selections in CollectDevices.
const maxNodeFanout = 4

var deviceClasses = []string{
	"Any", "Phone", "Gateway", "H323", "Cti", "VoiceMail",
	"MediaResources", "HuntList", "SIPTrunk", "Unknown",
}

var deviceStatuses = []string{
	"Any", "Registered", "UnRegistered", "Rejected",
	"PartiallyRegistered", "Unknown",
}

// Criteria selects devices by name. Zero values mean: Phone class, any
// status, any protocol, cluster-wide, up to 1000 devices per request.
type Criteria struct {
	Devices        []string // device names, at least one
	Class          string   // DeviceClass filter
	Status         string   // registration status filter
	Node           string   // restrict to one node, empty is cluster-wide
	Protocol       string
	DownloadStatus string
	MaxDevices     int    // per-request cap, at most 1000
	Model          int    // numeric model filter, 255 is any
	StateInfo      string // last StateInfo for delta polling (Ext only)
}

// Device is one device's registration record.
type Device struct {
	Name         string
	DirNumber    string
	Class        string
	Model        int
	Product      int
	Status       string
	StatusReason int
	Protocol     string
	IPAddress    string
	ActiveLoadID string
	TimeStamp    int64
}

// Node groups the devices one cluster node reported.
type Node struct {
	Name     string
	NoChange bool // set when StateInfo showed nothing changed on this node
	Devices  []Device
}

// Selection is a merged device selection result.
type Selection struct {
	TotalDevicesFound int
	Nodes             []Node
	StateInfo         string // returned by the Ext operation only
}

// Devices flattens the selection across nodes, in node order.
func (s *Selection) Devices() []Device {
	var all []Device
	for _, n := range s.Nodes {
		all = append(all, n.Devices...)
	}
	return all
}

func (s *Selection) merge(more *Selection) {
	s.TotalDevicesFound += more.TotalDevicesFound
	if more.StateInfo != "" {
		s.StateInfo = more.StateInfo
	}
	for _, n := range more.Nodes {
		i := slices.IndexFunc(s.Nodes, func(have Node) bool { return have.Name == n.Name })
		if i < 0 {
			s.Nodes = append(s.Nodes, n)
			continue
		}
		s.Nodes[i].Devices = append(s.Nodes[i].Devices, n.Devices...)
		s.Nodes[i].NoChange = s.Nodes[i].NoChange && n.NoChange
	}
}

// SelectCmDevice reports registration state for the devices named by crit.
func (c *Client) SelectCmDevice(ctx context.Context, crit Criteria) (*Selection, error) {
	return c.selectDevices(ctx, "selectCmDevice", crit)
}

// SelectCmDeviceExt is SelectCmDevice through the extended operation, which
// additionally carries StateInfo for delta polling.
func (c *Client) SelectCmDeviceExt(ctx context.Context, crit Criteria) (*Selection, error) {
	return c.selectDevices(ctx, "selectCmDeviceExt", crit)
}

func (c *Client) selectDevices(ctx context.Context, op string, crit Criteria) (*Selection, error) {
	if err := crit.validate(op); err != nil {
		return nil, err
	}

	merged := &Selection{}
	for chunk := range slices.Chunk(crit.Devices, crit.chunkSize()) {
		sel, err := c.selectChunk(ctx, op, crit, chunk)
		if err != nil {
			return nil, err
		}
		merged.merge(sel)
	}
	if n := len(merged.Devices()); merged.TotalDevicesFound > n {
		c.logger.Warn("selection truncated",
			"op", op, "found", merged.TotalDevicesFound, "returned", n)
	}
	return merged, nil
}

func (c *Client) selectChunk(ctx context.Context, op string, crit Criteria, devices []string) (*Selection, error) {
	items := make([]binding.Args, 0, len(devices))
	for _, d := range devices {
		items = append(items, binding.Args{"Item": d})
	}

	criteria := binding.Args{
		"MaxReturnedDevices": crit.chunkSize(),
		"DeviceClass":        crit.class(),
		"Model":              crit.model(),
		"Status":             crit.status(),
		"SelectBy":           "Name",
		"SelectItems":        binding.Args{"item": items},
		"Protocol":           orAny(crit.Protocol),
		"DownloadStatus":     orAny(crit.DownloadStatus),
	}
	if crit.Node != "" {
		criteria["NodeName"] = crit.Node
	}
	args := binding.Args{"CmSelectionCriteria": criteria}
	if crit.StateInfo != "" {
		args["StateInfo"] = crit.StateInfo
	}

	v, err := c.bind.Invoke(ctx, op, args, nil)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}

	// The extended response wraps the result next to StateInfo; the plain
	// one is the result itself.
	sel := &Selection{StateInfo: obj.String("StateInfo")}
	if inner := obj.Child("SelectCmDeviceResult"); inner != nil {
		obj = inner
	}
	sel.TotalDevicesFound = num(obj.String("TotalDevicesFound"))
	for _, n := range obj.Child("CmNodes").List("item") {
		node := Node{
			Name:     n.String("Name"),
			NoChange: n.String("NoChange") == "true",
		}
		for _, d := range n.Child("CmDevices").List("item") {
			node.Devices = append(node.Devices, Device{
				Name:         d.String("Name"),
				DirNumber:    d.String("DirNumber"),
				Class:        d.String("DeviceClass"),
				Model:        num(d.String("Model")),
				Product:      num(d.String("Product")),
				Status:       d.String("Status"),
				StatusReason: num(d.String("StatusReason")),
				Protocol:     d.String("Protocol"),
				IPAddress:    d.String("IPAddress"),
				ActiveLoadID: d.String("ActiveLoadID"),
				TimeStamp:    num64(d.String("TimeStamp")),
			})
		}
		sel.Nodes = append(sel.Nodes, node)
	}
	return sel, nil
}

// CollectDevices runs the extended selection against each named node
// concurrently. Results hold one selection per node, in input order.
func (c *Client) CollectDevices(ctx context.Context, nodes []string, crit Criteria) ([]*Selection, error) {
	if len(nodes) == 0 {
		return nil, &binding.ValidationError{
			Op: "selectCmDeviceExt", Path: "CmSelectionCriteria.NodeName",
			Message: "at least one node name is required",
		}
	}
	if err := crit.validate("selectCmDeviceExt"); err != nil {
		return nil, err
	}

	results := make([]*Selection, len(nodes))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(maxNodeFanout)
	for i, node := range nodes {
		nodeCrit := crit
		nodeCrit.Node = node
		p.Go(func(ctx context.Context) error {
			sel, err := c.SelectCmDeviceExt(ctx, nodeCrit)
			if err != nil {
				return fmt.Errorf("node %s: %w", nodeCrit.Node, err)
			}
			results[i] = sel
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (crit Criteria) validate(op string) error {
	if len(crit.Devices) == 0 {
		return &binding.ValidationError{
			Op: op, Path: "CmSelectionCriteria.SelectItems",
			Message: "at least one device name is required",
		}
	}
	if class := crit.class(); !slices.Contains(deviceClasses, class) {
		return &binding.ValidationError{
			Op: op, Path: "CmSelectionCriteria.DeviceClass",
			Message: fmt.Sprintf("value %q is not one of %s", class, strings.Join(deviceClasses, ", ")),
		}
	}
	if status := crit.status(); !slices.Contains(deviceStatuses, status) {
		return &binding.ValidationError{
			Op: op, Path: "CmSelectionCriteria.Status",
			Message: fmt.Sprintf("value %q is not one of %s", status, strings.Join(deviceStatuses, ", ")),
		}
	}
	if crit.MaxDevices < 0 || crit.MaxDevices > maxSelectItems {
		return &binding.ValidationError{
			Op: op, Path: "CmSelectionCriteria.MaxReturnedDevices",
			Message: fmt.Sprintf("must be between 0 and %d", maxSelectItems),
		}
	}
	return nil
}

func (crit Criteria) chunkSize() int {
	if crit.MaxDevices > 0 {
		return crit.MaxDevices
	}
	return maxSelectItems
}

func (crit Criteria) class() string {
	if crit.Class == "" {
		return "Phone"
	}
	return crit.Class
}

func (crit Criteria) status() string {
	return orAny(crit.Status)
}

func (crit Criteria) model() int {
	if crit.Model == 0 {
		return 255
	}
	return crit.Model
}

func orAny(s string) string {
	if s == "" {
		return "Any"
	}
	return s
}

func num(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func num64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
