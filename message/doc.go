// Package message turns FieldSets into protocol messages.
//
// A Message is a FieldSet with header semantics: its type (MsgType, 35), sequence number
// (MsgSeqNum, 34) and the sender and target comp IDs. Three implementations exist:
//
//   - RawMessage holds only the framing and routing header fields; the rest of the body
//     stays encoded. It is what wire.Codec.DecodeRaw returns and is enough for routing,
//     sequencing and storage without parsing every field.
//   - OptimizedMessage is backed by unique-tag, map-based storage and keeps a snapshot of
//     the group template registry it was parsed with.
//   - GenericMessage is backed by list storage and accepts repeated tags.
//
// # Factory
//
// NewGeneric and NewGenericWithTemplates pick the storage for the caller: the fields are
// folded into groups first, and the remaining top-level tags are checked for repeats.
// Unique tags give an *OptimizedMessage, repeated ones a *GenericMessage.
//
//	msg, err := message.NewGenericWithTemplates(template.Standard(),
//	    field.MustNew(protocol.TagMsgType, protocol.MsgTypeHeartbeat),
//	    field.MustNew(protocol.TagMsgSeqNum, 1),
//	)
//	msg.Storage() // format.StorageOrdered
//
// Callers that need to know which strategy was chosen use Storage or a type switch.
//
// # Validation
//
// Construction never validates message content. Validate checks the one structural
// requirement, a MsgType field, without modifying the message.
package message
