//go:build windows

package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/frudas24/boxgeom/internal/fixture"
	"github.com/lxn/win"
)

// ListMonitors returns the available displays in enumeration order, 1-based.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

// CursorEvent reads the OS cursor as a mouse event relative to m.
func CursorEvent(m Monitor) (fixture.Event, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return fixture.Event{}, fmt.Errorf("GetCursorPos failed: %w", syscall.GetLastError())
	}
	return RelativeEvent(m, int(pt.X), int(pt.Y)), nil
}

type enumState struct {
	list  []Monitor
	index int
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	r := info.RcMonitor
	s.index++
	s.list = append(s.list, Monitor{
		Index:   s.index,
		X:       int(r.Left),
		Y:       int(r.Top),
		W:       int(r.Right - r.Left),
		H:       int(r.Bottom - r.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
