package models

import "strings"

// ItemKind tags which inventory table a booking's item_id resolves against.
type ItemKind string

const (
	KindHotel     ItemKind = "hotel"
	KindPackage   ItemKind = "package"
	KindHouseboat ItemKind = "houseboat"
	KindActivity  ItemKind = "activity"
	KindTaxi      ItemKind = "taxi"
)

var bookableKinds = map[string]ItemKind{
	"hotel":     KindHotel,
	"package":   KindPackage,
	"houseboat": KindHouseboat,
	"activity":  KindActivity,
	"taxi":      KindTaxi,
}

// ParseItemKind validates a raw booking_type tag. Unknown tags are rejected
// here so nothing downstream ever dispatches on an unchecked string.
func ParseItemKind(raw string) (ItemKind, bool) {
	k, ok := bookableKinds[strings.ToLower(strings.TrimSpace(raw))]
	return k, ok
}

func (k ItemKind) String() string { return string(k) }
