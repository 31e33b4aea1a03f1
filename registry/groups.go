package registry

// Well-known FIX 5.0 SP2 message types referenced by the message-specific
// group bindings below.
const (
	MsgTypeNewOrderSingle = "D"  // NewOrderSingle
	MsgTypeListOrder      = "E"  // ListOrdGrp-bearing messages (NewOrderList)
	MsgTypeNewOrderMulti  = "AB" // NewOrderMultileg
	MsgTypeMultilegOrdCxl = "AC" // MultilegOrderCancelReplace
	MsgTypeSides          = "s"  // NoSides context
)

// Standard returns the registry shipped with this module: the core
// NoPartyIDs/NoOrders/NoAllocs bindings plus a set of leg-level groups that
// exercise three levels of nesting end to end (NoLegs -> NoNestedPartyIDs ->
// NoNestedPartySubIDs, and NoLegs -> NoLegStipulations). Every call returns
// the same registry, built once at package init from StandardDefs.
func Standard() *Registry {
	return standard
}

// standard is the process-wide registry behind Standard. It is never
// mutated after init.
var standard *Registry

func init() { standard = New(StandardDefs) }

// StandardDefs is the definition list behind Standard. It is exported so
// callers (and tests) can build variant registries by adding to or
// filtering a copy of it.
var StandardDefs = []Def{
	{
		// NoPartyIDs: generic across the whole protocol.
		Count:   453,
		MsgType: AnyMsgType,
		Delim:   448, // PartyID
		Members: []Tag{448, 447, 452}, // PartyID, PartyIDSource, PartyRole (802 nested separately)
		Nested:  []Tag{802},
	},
	{
		// NoPartySubIDs: nested inside a NoPartyIDs entry.
		Count:   802,
		MsgType: AnyMsgType,
		Delim:   523, // PartySubID
		Members: []Tag{523, 803},
	},
	{
		// NoOrders under ListOrdGrp (MsgType=E, NewOrderList).
		Count:   73,
		MsgType: MsgTypeListOrder,
		Delim:   11, // ClOrdID
		Members: []Tag{11, 67, 55, 54, 38, 40, 44, 15, 1, 21, 60, 63},
		Nested:  []Tag{453, 78},
	},
	{
		// NoAllocs: nested inside a NoOrders entry (or top-level on an
		// allocation-bearing message).
		Count:   78,
		MsgType: AnyMsgType,
		Delim:   79, // AllocAccount
		Members: []Tag{79, 661, 736, 467, 80},
		Nested:  []Tag{756},
	},
	{
		// NoNested2PartyIDs: nested inside a NoAllocs entry.
		Count:   756,
		MsgType: AnyMsgType,
		Delim:   757, // Nested2PartyID
		Members: []Tag{757, 758, 759},
		Nested:  []Tag{806},
	},
	{
		// NoNested2PartySubIDs: nested inside a NoNested2PartyIDs entry —
		// this is the fourth nesting level (NoOrders -> NoAllocs ->
		// NoNested2PartyIDs -> NoNested2PartySubIDs).
		Count:   806,
		MsgType: AnyMsgType,
		Delim:   807, // Nested2PartySubID
		Members: []Tag{807, 808},
	},
	{
		// NoLegs under NewOrderMultileg / MultilegOrderCancelReplace.
		Count:   555,
		MsgType: MsgTypeNewOrderMulti,
		Delim:   600, // LegSymbol
		Members: []Tag{600, 602, 606, 616, 624, 566, 654, 587, 588},
		Nested:  []Tag{683, 539},
	},
	{
		Count:   555,
		MsgType: MsgTypeMultilegOrdCxl,
		Delim:   600,
		Members: []Tag{600, 602, 606, 616, 624, 566, 654, 587, 588},
		Nested:  []Tag{683, 539},
	},
	{
		// NoLegStipulations: nested inside a NoLegs entry.
		Count:   683,
		MsgType: AnyMsgType,
		Delim:   688, // LegStipulationType
		Members: []Tag{688, 689},
	},
	{
		// NoNestedPartyIDs: nested inside a NoLegs entry (leg-level
		// parties, distinct tag range from the top-level NoPartyIDs).
		Count:   539,
		MsgType: AnyMsgType,
		Delim:   524, // NestedPartyID
		Members: []Tag{524, 525, 538},
		Nested:  []Tag{804},
	},
	{
		// NoNestedPartySubIDs: nested inside a NoNestedPartyIDs entry.
		Count:   804,
		MsgType: AnyMsgType,
		Delim:   545, // NestedPartySubID
		Members: []Tag{545, 805},
	},
	{
		// NoSides under a quote-request style message.
		Count:   552,
		MsgType: MsgTypeSides,
		Delim:   54, // Side
		Members: []Tag{54, 11, 41, 38, 15, 64},
		Nested:  []Tag{453},
	},
	{
		// NoTrdRegTimestamps: generic, commonly present on execution
		// reports alongside NoOrders/NoAllocs.
		Count:   768,
		MsgType: AnyMsgType,
		Delim:   769, // TrdRegTimestamp
		Members: []Tag{769, 770, 771},
	},
	{
		// NoContraBrokers: generic, present on execution reports.
		Count:   382,
		MsgType: AnyMsgType,
		Delim:   375, // ContraBroker
		Members: []Tag{375, 337, 437, 438},
	},
}
