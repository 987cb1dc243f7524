package platform

import (
	"errors"
	"slices"
	"testing"
)

func TestParsePlatform_KnownNames(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
		sys  WindowSystem
	}{
		{"win32", Win32, SystemWin32},
		{"linux", Linux, SystemX11},
		{" Raspi ", Raspi, SystemDispmanx},
		{"JETSON", Jetson, SystemNone},
	}
	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if err != nil {
			t.Fatalf("ParsePlatform(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got.WindowSystem() != tt.sys {
			t.Fatalf("%q.WindowSystem() = %v, want %v", got, got.WindowSystem(), tt.sys)
		}
	}
}

func TestParsePlatform_UnknownIsFatalConfigError(t *testing.T) {
	for _, name := range []string{"", "darwin", "android", "x11"} {
		_, err := ParsePlatform(name)
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Fatalf("ParsePlatform(%q) error = %v, want ErrUnsupportedPlatform", name, err)
		}
	}
}

func TestPlatformBuildTags(t *testing.T) {
	if tags := Raspi.BuildTags(); len(tags) != 1 || tags[0] != "raspi" {
		t.Fatalf("Raspi.BuildTags() = %v", tags)
	}
	if tags := Linux.BuildTags(); len(tags) != 0 {
		t.Fatalf("Linux.BuildTags() = %v, want none", tags)
	}
}

func TestOptionsValidateSize(t *testing.T) {
	tests := []struct {
		w, h int
		ok   bool
	}{
		{800, 600, true},
		{1, 1, true},
		{0, 600, false},
		{800, -1, false},
	}
	for _, tt := range tests {
		err := Options{Width: tt.w, Height: tt.h}.ValidateSize()
		if tt.ok && err != nil {
			t.Fatalf("ValidateSize(%dx%d) unexpected error: %v", tt.w, tt.h, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("ValidateSize(%dx%d) error = %v, want ErrInvalidOptions", tt.w, tt.h, err)
		}
	}
}

func TestOptionsEmitWithoutCallback(t *testing.T) {
	// Must not panic.
	Options{}.Emit(CloseRequestEvent{})

	var got []Event
	opts := Options{OnEvent: func(ev Event) { got = append(got, ev) }}
	opts.Emit(ResizeEvent{Width: 10, Height: 20})
	if len(got) != 1 || got[0] != (ResizeEvent{Width: 10, Height: 20}) {
		t.Fatalf("events = %#v", got)
	}
}

func TestWindowSystemString(t *testing.T) {
	if SystemDispmanx.String() != "DISPMANX" {
		t.Fatalf("String() = %q", SystemDispmanx.String())
	}
	if WindowSystem(42).String() != "WindowSystem(42)" {
		t.Fatalf("String() = %q", WindowSystem(42).String())
	}
}

func TestVulkanInstanceExtensions(t *testing.T) {
	tests := []struct {
		sys  WindowSystem
		want []string
	}{
		{SystemWin32, []string{"VK_KHR_win32_surface", "VK_KHR_surface"}},
		{SystemX11, []string{"VK_KHR_xlib_surface", "VK_KHR_surface"}},
		{SystemDispmanx, nil},
		{SystemNone, nil},
	}
	for _, tt := range tests {
		if got := tt.sys.VulkanInstanceExtensions(); !slices.Equal(got, tt.want) {
			t.Fatalf("%v.VulkanInstanceExtensions() = %v, want %v", tt.sys, got, tt.want)
		}
	}
}
