package ris

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/uctools/cucmapi/pkg/binding"
)

var ctiClasses = []string{"Provider", "Device", "Line"}

var ctiStatuses = []string{"Any", "Open", "Closed", "OpenFailed", "Unknown"}

// CtiCriteria selects CTI manager connections. Exactly which selector list
// applies depends on Class: Provider matches AppIDs, Device matches Devices,
// Line matches Lines. At least one selector entry is required.
type CtiCriteria struct {
	Class     string // Provider, Device, or Line
	Status    string // connection status filter
	Node      string // restrict to one node, empty is cluster-wide
	AppIDs    []string
	Devices   []string
	Lines     []string
	MaxItems  int    // per-request cap, at most 1000
	StateInfo string // last StateInfo for delta polling
}

// CtiItem is one CTI connection record.
type CtiItem struct {
	AppID     string
	DevName   string
	DirNumber string
	Status    string
	NodeName  string
	TimeStamp int64
}

// CtiNode groups the items one cluster node reported.
type CtiNode struct {
	Name     string
	NoChange bool
	Items    []CtiItem
}

// CtiSelection is a CTI selection result.
type CtiSelection struct {
	TotalItemsFound int
	Nodes           []CtiNode
	StateInfo       string
}

// Items flattens the selection across nodes, in node order.
func (s *CtiSelection) Items() []CtiItem {
	var all []CtiItem
	for _, n := range s.Nodes {
		all = append(all, n.Items...)
	}
	return all
}

// SelectCtiItem reports CTI manager connection state for the applications,
// devices, or lines named by crit.
func (c *Client) SelectCtiItem(ctx context.Context, crit CtiCriteria) (*CtiSelection, error) {
	const op = "selectCtiItem"
	if err := crit.validate(op); err != nil {
		return nil, err
	}

	criteria := binding.Args{
		"MaxReturnedItems": crit.maxItems(),
		"CtiMgrClass":      crit.Class,
		"Status":           orAny(crit.Status),
		"SelectAppBy":      "AppId",
	}
	if crit.Node != "" {
		criteria["NodeName"] = crit.Node
	}
	if len(crit.AppIDs) > 0 {
		criteria["AppItems"] = binding.Args{"item": itemArgs("AppItem", crit.AppIDs)}
	}
	if len(crit.Devices) > 0 {
		criteria["DevNames"] = binding.Args{"item": itemArgs("DevName", crit.Devices)}
	}
	if len(crit.Lines) > 0 {
		criteria["DirNumbers"] = binding.Args{"item": itemArgs("DirNumber", crit.Lines)}
	}
	args := binding.Args{"CtiSelectionCriteria": criteria}
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

	sel := &CtiSelection{StateInfo: obj.String("StateInfo")}
	if inner := obj.Child("SelectCtiItemResult"); inner != nil {
		obj = inner
	}
	sel.TotalItemsFound = num(obj.String("TotalItemsFound"))
	for _, n := range obj.Child("CtiNodes").List("item") {
		node := CtiNode{
			Name:     n.String("Name"),
			NoChange: n.String("NoChange") == "true",
		}
		for _, it := range n.Child("CtiItems").List("item") {
			node.Items = append(node.Items, CtiItem{
				AppID:     it.String("AppId"),
				DevName:   it.String("DevName"),
				DirNumber: it.String("DirNumber"),
				Status:    it.String("Status"),
				NodeName:  it.String("NodeName"),
				TimeStamp: num64(it.String("TimeStamp")),
			})
		}
		sel.Nodes = append(sel.Nodes, node)
	}
	return sel, nil
}

func (crit CtiCriteria) validate(op string) error {
	if !slices.Contains(ctiClasses, crit.Class) {
		return &binding.ValidationError{
			Op: op, Path: "CtiSelectionCriteria.CtiMgrClass",
			Message: fmt.Sprintf("value %q is not one of %s", crit.Class, strings.Join(ctiClasses, ", ")),
		}
	}
	if status := orAny(crit.Status); !slices.Contains(ctiStatuses, status) {
		return &binding.ValidationError{
			Op: op, Path: "CtiSelectionCriteria.Status",
			Message: fmt.Sprintf("value %q is not one of %s", status, strings.Join(ctiStatuses, ", ")),
		}
	}
	if len(crit.AppIDs)+len(crit.Devices)+len(crit.Lines) == 0 {
		return &binding.ValidationError{
			Op: op, Path: "CtiSelectionCriteria",
			Message: "at least one of AppItems, DevNames, or DirNumbers is required",
		}
	}
	if crit.MaxItems < 0 || crit.MaxItems > maxSelectItems {
		return &binding.ValidationError{
			Op: op, Path: "CtiSelectionCriteria.MaxReturnedItems",
			Message: fmt.Sprintf("must be between 0 and %d", maxSelectItems),
		}
	}
	return nil
}

func (crit CtiCriteria) maxItems() int {
	if crit.MaxItems > 0 {
		return crit.MaxItems
	}
	return maxSelectItems
}

func itemArgs(field string, values []string) []binding.Args {
	items := make([]binding.Args, 0, len(values))
	for _, v := range values {
		items = append(items, binding.Args{field: v})
	}
	return items
}
