package template

import "github.com/aemr3/WTFIX/protocol"

// standardTemplates are the FIX 4.4 repeating groups whose members appear in every
// instance. Groups with optional members, such as NoPartyIDs or NoMDEntries, are left out:
// assembly requires every member, so they need a venue specific registry.
var standardTemplates = map[int][]int{
	protocol.TagNoLinesOfText:       {protocol.TagText},
	protocol.TagNoRoutingIDs:        {protocol.TagRoutingType, protocol.TagRoutingID},
	protocol.TagNoMDEntryTypes:      {protocol.TagMDEntryType},
	protocol.TagNoPartySubIDs:       {protocol.TagPartySubID, protocol.TagPartySubIDType},
	protocol.TagNoNestedPartySubIDs: {protocol.TagNestedPartySubID, protocol.TagNestedPartySubIDType},
}

// Standard returns a new registry preloaded with the common FIX 4.4 groups.
func Standard() *Registry {
	return MustNewRegistry(standardTemplates)
}
