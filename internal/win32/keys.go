package win32

import "fmt"

// Virtual-key codes with names matching X keysym names, so both backends
// report the same KeyEvent.Name for the same key.
var keyNames = map[uint32]string{
	0x08: "BackSpace",
	0x09: "Tab",
	0x0D: "Return",
	0x1B: "Escape",
	0x20: "space",
	0x21: "Prior",
	0x22: "Next",
	0x23: "End",
	0x24: "Home",
	0x25: "Left",
	0x26: "Up",
	0x27: "Right",
	0x28: "Down",
	0x2D: "Insert",
	0x2E: "Delete",
}

func keyName(vk uint32) string {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return string(rune(vk - 'A' + 'a'))
	case vk >= '0' && vk <= '9':
		return string(rune(vk))
	case vk >= 0x70 && vk <= 0x7B:
		return fmt.Sprintf("F%d", vk-0x70+1)
	}
	return keyNames[vk]
}
