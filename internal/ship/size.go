package ship

import "strings"

// SlotSize is a totally ordered size rank. A component fits a slot when its
// rank does not exceed the slot's rank: downsizing is permitted, upsizing is
// rejected.
type SlotSize string

// Slot sizes, smallest first.
const (
	SizeXS     SlotSize = "XS"
	SizeSmall  SlotSize = "Small"
	SizeMedium SlotSize = "Medium"
	SizeLarge  SlotSize = "Large"
	SizeXL     SlotSize = "XL"
	SizeXXL    SlotSize = "XXL"
)

// AllSizes lists every slot size in ascending rank order.
var AllSizes = []SlotSize{SizeXS, SizeSmall, SizeMedium, SizeLarge, SizeXL, SizeXXL}

var sizeRanks = map[SlotSize]int{
	SizeXS:     0,
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
	SizeXL:     4,
	SizeXXL:    5,
}

// Rank returns the size's position in the total order, XS = 0 through
// XXL = 5. Unknown sizes rank below XS so they never fit anywhere.
func (s SlotSize) Rank() int {
	if r, ok := sizeRanks[s]; ok {
		return r
	}
	return -1
}

// Valid reports whether s is one of the closed set of sizes.
func (s SlotSize) Valid() bool {
	_, ok := sizeRanks[s]
	return ok
}

// FitsIn reports whether a component of size s fits a slot of size slot.
func (s SlotSize) FitsIn(slot SlotSize) bool {
	return s.Valid() && slot.Valid() && s.Rank() <= slot.Rank()
}

// ParseSize returns the SlotSize for its canonical string form.
func ParseSize(s string) (SlotSize, bool) {
	size := SlotSize(s)
	return size, size.Valid()
}

// ParseSizeFold matches s against the known sizes ignoring case.
func ParseSizeFold(s string) (SlotSize, bool) {
	for _, size := range AllSizes {
		if strings.EqualFold(s, string(size)) {
			return size, true
		}
	}
	return "", false
}
