package reconcile

const (
	// headerEntity is the entity label of the ISO table header row.
	headerEntity = "ENTITY"
	// headerCountry is the country column label of the crosswalk header row.
	headerCountry = "ISO3166-1-Alpha-3"
	// notApplicable is the ISO spelling of an undefined minor unit.
	notApplicable = "N.A."
)

// ReservedFunds are the Active-table codes classified as fund or unit-of-account instruments.
var ReservedFunds = newSet(
	"BOV", "CLF", "COU", "CHW", "CHE", "MXV", "USN", "UYI", "UYW",
)

// NumericDenylist are legacy codes kept out of the numeric index because
// their numeric identifiers were reused by successor currencies.
var NumericDenylist = newSet(
	"ALK", "AON", "ARA", "ARP", "ARY", "BOP", "BRC", "BRE", "BRN", "BGK",
	"BGL", "BUK", "CHC", "CSJ", "GNE", "GNS", "GWP", "HRK", "ILP", "ILR",
	"LAJ", "LSM", "LVR", "LTT", "MTP", "MXP", "MZM", "NIC", "PEI", "PEH",
	"PES", "ROL", "SDP", "UGW", "UYN", "VNC", "UYP", "UGS", "MVQ", "ZRZ",
	"ZWD", "ISJ", "SUR", "YUM", "YUN", "ZWC",
)

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s set) Len() int {
	return len(s)
}
