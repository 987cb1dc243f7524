//go:build !(linux && raspi && cgo)

package dispmanx

import "errors"

var errNoVideoCore = errors.New("VideoCore support requires a cgo build with the raspi tag")

type unavailable struct{}

func newVideoCore() videoCore {
	return unavailable{}
}

func (unavailable) openDisplay() (uintptr, error) {
	return 0, errNoVideoCore
}

func (unavailable) displaySize() (int, int, error) {
	return 0, 0, errNoVideoCore
}

func (unavailable) addElement(int, int) (uintptr, error) {
	return 0, errNoVideoCore
}

func (unavailable) removeElement() error {
	return nil
}

func (unavailable) closeDisplay() error {
	return nil
}
