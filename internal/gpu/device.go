package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

var (
	// ErrNoAdapter is returned when no usable GPU device can be obtained.
	ErrNoAdapter = errors.New("gpu: no adapter")

	// ErrNotPrepared is returned by Render before a successful Prepare.
	ErrNotPrepared = errors.New("gpu: renderer not prepared")

	// ErrSurface is returned when the window surface has no texture view.
	ErrSurface = errors.New("gpu: surface unavailable")

	// ErrUniforms is returned for uniform data of the wrong size.
	ErrUniforms = errors.New("gpu: uniform size mismatch")

	// ErrTimeout is returned when a submitted frame does not finish in time.
	ErrTimeout = errors.New("gpu: timed out waiting for GPU")
)

// Device is a HAL device and queue, either opened here or borrowed from a
// host such as a gogpu window.
type Device struct {
	device   hal.Device
	queue    hal.Queue
	instance hal.Instance
	name     string
	owned    bool
}

// OpenStandalone opens the first discrete or integrated Vulkan adapter,
// or the first adapter of any kind.
func OpenStandalone() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", ErrNoAdapter)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no GPU adapters found", ErrNoAdapter)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}
	slogger().Info("gpu: device opened", "adapter", selected.Info.Name, "type", selected.Info.DeviceType)
	return &Device{
		device:   openDev.Device,
		queue:    openDev.Queue,
		instance: instance,
		name:     selected.Info.Name,
		owned:    true,
	}, nil
}

// FromProvider borrows the device of a host. Two provider shapes are
// understood: gogpu's gpucontext.DeviceProvider, whose Device is a
// *wgpu.Device exposing HalDevice and HalQueue, and hosts that implement
// HalDevice() any and HalQueue() any directly. Close leaves the host's
// device alone.
func FromProvider(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	type deviceProvider interface {
		Device() gpucontext.Device
	}
	type halDevice interface {
		HalDevice() hal.Device
		HalQueue() hal.Queue
	}

	var device hal.Device
	var queue hal.Queue
	switch p := provider.(type) {
	case halProvider:
		device, _ = p.HalDevice().(hal.Device)
		queue, _ = p.HalQueue().(hal.Queue)
	case deviceProvider:
		hd, ok := any(p.Device()).(halDevice)
		if !ok {
			return nil, fmt.Errorf("%w: provider device %T does not expose HAL types", ErrNoAdapter, p.Device())
		}
		device, queue = hd.HalDevice(), hd.HalQueue()
	default:
		return nil, fmt.Errorf("%w: provider does not expose HAL types", ErrNoAdapter)
	}
	if device == nil {
		return nil, fmt.Errorf("%w: provider has no hal.Device", ErrNoAdapter)
	}
	if queue == nil {
		return nil, fmt.Errorf("%w: provider has no hal.Queue", ErrNoAdapter)
	}
	return &Device{device: device, queue: queue, name: "shared"}, nil
}

// Wrap returns a Device over an existing device and queue that Close
// will not destroy.
func Wrap(device hal.Device, queue hal.Queue) *Device {
	return &Device{device: device, queue: queue, name: "wrapped"}
}

// Name describes the adapter.
func (d *Device) Name() string { return d.name }

// Close destroys the device if OpenStandalone created it. Safe to call
// more than once.
func (d *Device) Close() {
	if d.owned && d.device != nil {
		d.device.Destroy()
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	d.device = nil
	d.queue = nil
}
