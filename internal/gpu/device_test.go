package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

type fakeProvider struct {
	device, queue any
}

func (p fakeProvider) HalDevice() any { return p.device }
func (p fakeProvider) HalQueue() any  { return p.queue }

func TestFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	dev, err := FromProvider(fakeProvider{device: device, queue: queue})
	if err != nil {
		t.Fatalf("FromProvider failed: %v", err)
	}
	if dev.device != device || dev.queue != queue {
		t.Error("provider device not stored")
	}

	// Close must not destroy a borrowed device.
	dev.Close()
	dev.Close()
	fence, err := device.CreateFence()
	if err != nil {
		t.Fatalf("device unusable after closing the borrowed handle: %v", err)
	}
	device.DestroyFence(fence)
}

// halBacked mirrors *wgpu.Device, which hands out its HAL objects.
type halBacked struct {
	device hal.Device
	queue  hal.Queue
}

func (d halBacked) HalDevice() hal.Device { return d.device }
func (d halBacked) HalQueue() hal.Queue   { return d.queue }

// contextProvider mirrors gogpu's gpucontext.DeviceProvider.
type contextProvider struct {
	device gpucontext.Device
}

func (p contextProvider) Device() gpucontext.Device { return p.device }

func TestFromContextProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	dev, err := FromProvider(contextProvider{device: halBacked{device: device, queue: queue}})
	if err != nil {
		t.Fatalf("FromProvider failed: %v", err)
	}
	if dev.device != device || dev.queue != queue {
		t.Error("provider device not stored")
	}
	dev.Close()

	tests := []struct {
		name     string
		provider contextProvider
	}{
		{"no device yet", contextProvider{}},
		{"device without HAL access", contextProvider{device: struct{}{}}},
		{"missing queue", contextProvider{device: halBacked{device: device}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromProvider(tt.provider); !errors.Is(err, ErrNoAdapter) {
				t.Errorf("FromProvider() error = %v, want ErrNoAdapter", err)
			}
		})
	}
}

func TestFromProviderErrors(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	tests := []struct {
		name     string
		provider any
	}{
		{"not a provider", struct{}{}},
		{"nil device", fakeProvider{device: nil, queue: nil}},
		{"wrong queue type", fakeProvider{device: device, queue: "queue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromProvider(tt.provider); !errors.Is(err, ErrNoAdapter) {
				t.Errorf("FromProvider() error = %v, want ErrNoAdapter", err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	dev := Wrap(device, queue)
	if dev.Name() != "wrapped" {
		t.Errorf("Name() = %q", dev.Name())
	}
	dev.Close()
	if dev.device != nil {
		t.Error("Close did not drop the device handle")
	}
}
