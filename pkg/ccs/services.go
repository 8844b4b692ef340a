package ccs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uctools/cucmapi/pkg/binding"
)

// ServiceInfo is one service's runtime state.
type ServiceInfo struct {
	Name       string
	Status     string
	ReasonCode int
	Reason     string
	StartTime  string
	UpTime     int64 // seconds
}

// StaticService is one entry of the static service specification list.
type StaticService struct {
	Name       string
	Type       string
	Deployable bool
}

// ExtendedService is one entry of the extended static service list.
type ExtendedService struct {
	Name           string
	ProductID      string
	DependencyType string
}

// Product identifies one installed product.
type Product struct {
	ID      string
	Name    string
	Version string
}

// ServiceStatuses reports runtime state for the named services, or for
// every service when no names are given.
func (c *Client) ServiceStatuses(ctx context.Context, names ...string) ([]ServiceInfo, error) {
	const op = "soapGetServiceStatus"
	args := binding.Args{}
	if len(names) > 0 {
		args["ServiceStatus"] = names
	}
	obj, err := c.invokeObject(ctx, c.base, op, args)
	if err != nil {
		return nil, err
	}
	if err := returnCodeError(op, obj); err != nil {
		return nil, err
	}
	return serviceInfos(obj), nil
}

// ControlServices starts, stops, or restarts services on a node. The control
// value is Start, Stop, or Restart; the service list must not be empty. The
// returned entries carry each service's state after the action.
func (c *Client) ControlServices(ctx context.Context, node, control string, services []string) ([]ServiceInfo, error) {
	const op = "soapDoControlServices"
	if err := requireServices(op, "ControlServiceRequest.ServiceList", services); err != nil {
		return nil, err
	}
	req := binding.Args{
		"ControlType": control,
		"ServiceList": binding.Args{"item": services},
	}
	if node != "" {
		req["NodeName"] = node
	}
	obj, err := c.invokeObject(ctx, c.base, op, binding.Args{"ControlServiceRequest": req})
	if err != nil {
		return nil, err
	}
	if err := returnCodeError(op, obj); err != nil {
		return nil, err
	}
	return serviceInfos(obj), nil
}

// DeployServices activates or deactivates deployable services on a node.
// The deploy value is Deploy or UnDeploy; the service list must not be
// empty.
func (c *Client) DeployServices(ctx context.Context, node, deploy string, services []string) ([]ServiceInfo, error) {
	const op = "soapDoServiceDeployment"
	if err := requireServices(op, "DeploymentServiceRequest.ServiceList", services); err != nil {
		return nil, err
	}
	req := binding.Args{
		"DeployType":  deploy,
		"ServiceList": binding.Args{"item": services},
	}
	if node != "" {
		req["NodeName"] = node
	}
	obj, err := c.invokeObject(ctx, c.base, op, binding.Args{"DeploymentServiceRequest": req})
	if err != nil {
		return nil, err
	}
	if err := returnCodeError(op, obj); err != nil {
		return nil, err
	}
	return serviceInfos(obj), nil
}

// StaticServices lists the static specification of every service.
func (c *Client) StaticServices(ctx context.Context) ([]StaticService, error) {
	rows, err := c.invokeList(ctx, c.base, "soapGetStaticServiceList", binding.Args{})
	if err != nil {
		return nil, err
	}
	out := make([]StaticService, 0, len(rows))
	for _, r := range rows {
		out = append(out, StaticService{
			Name:       r.String("ServiceName"),
			Type:       r.String("ServiceType"),
			Deployable: r.String("Deployable") == "true",
		})
	}
	return out, nil
}

// Products lists the installed products of the node.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	rows, err := c.invokeList(ctx, c.base, "getProductInformationList", binding.Args{})
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, Product{
			ID:      r.String("ProductID"),
			Name:    r.String("ProductName"),
			Version: r.String("ProductVersion"),
		})
	}
	return out, nil
}

// FileDirectoryList names the files under one directory on the node,
// without downloading them. Pair with the log collection file services.
func (c *Client) FileDirectoryList(ctx context.Context, path string) ([]string, error) {
	const op = "getFileDirectoryList"
	if path == "" {
		return nil, &binding.ValidationError{Op: op, Path: "DirectoryPath", Message: "empty path"}
	}
	v, err := c.ex.Invoke(ctx, op, binding.Args{"DirectoryPath": path}, nil)
	if err != nil {
		return nil, err
	}
	files, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	return files, nil
}

// StaticServicesExtended lists every service with its owning product and
// dependency behavior. Input for ControlServicesEx.
func (c *Client) StaticServicesExtended(ctx context.Context) ([]ExtendedService, error) {
	rows, err := c.invokeList(ctx, c.ex, "getStaticServiceListExtended", binding.Args{})
	if err != nil {
		return nil, err
	}
	out := make([]ExtendedService, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExtendedService{
			Name:           r.String("ServiceName"),
			ProductID:      r.String("ProductID"),
			DependencyType: r.String("DependencyType"),
		})
	}
	return out, nil
}

// ControlServicesEx starts, stops, or restarts services of one product.
// The dependency value is Enforce to carry dependent services along, or
// None; the service list must not be empty.
func (c *Client) ControlServicesEx(ctx context.Context, productID, dependency, control string, services []string) ([]ServiceInfo, error) {
	const op = "soapDoControlServicesEx"
	if err := requireServices(op, "ControlServiceRequestEx.ServiceList", services); err != nil {
		return nil, err
	}
	req := binding.Args{
		"ProductId":   productID,
		"ControlType": control,
		"ServiceList": binding.Args{"item": services},
	}
	if dependency != "" {
		req["DependencyType"] = dependency
	}
	obj, err := c.invokeObject(ctx, c.ex, op, binding.Args{"ControlServiceRequestEx": req})
	if err != nil {
		return nil, err
	}
	if err := returnCodeError(op, obj); err != nil {
		return nil, err
	}
	return serviceInfos(obj), nil
}

func (c *Client) invokeObject(ctx context.Context, bind *binding.Client, op string, args binding.Args) (binding.Object, error) {
	v, err := bind.Invoke(ctx, op, args, nil)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	return obj, nil
}

func (c *Client) invokeList(ctx context.Context, bind *binding.Client, op string, args binding.Args) ([]binding.Object, error) {
	v, err := bind.Invoke(ctx, op, args, nil)
	if err != nil {
		return nil, err
	}
	rows, ok := v.([]binding.Object)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result shape %T", op, v)
	}
	return rows, nil
}

// returnCodeError maps the serviceability return code convention onto an
// error: zero is success, anything else failed server-side.
func returnCodeError(op string, obj binding.Object) error {
	code := obj.String("ReturnCode")
	if code == "" || code == "0" {
		return nil
	}
	if reason := obj.String("ReasonString"); reason != "" {
		return fmt.Errorf("%s: return code %s: %s", op, code, reason)
	}
	return fmt.Errorf("%s: return code %s", op, code)
}

func requireServices(op, path string, services []string) error {
	if len(services) == 0 {
		return &binding.ValidationError{Op: op, Path: path, Message: "at least one service name is required"}
	}
	return nil
}

func num(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func num64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func serviceInfos(obj binding.Object) []ServiceInfo {
	items := obj.Child("ServiceInfoList").List("item")
	out := make([]ServiceInfo, 0, len(items))
	for _, r := range items {
		out = append(out, ServiceInfo{
			Name:       r.String("ServiceName"),
			Status:     r.String("ServiceStatus"),
			ReasonCode: num(r.String("ReasonCode")),
			Reason:     r.String("ReasonCodeString"),
			StartTime:  r.String("StartTime"),
			UpTime:     num64(r.String("UpTime")),
		})
	}
	return out
}
